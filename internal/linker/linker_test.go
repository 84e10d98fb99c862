package linker

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

func added() domain.History {
	return domain.History{Added: &domain.Version{Protocol: "fix", Major: "4", Minor: "4", ServicePack: "0"}}
}

func sampleExtraction() *domain.Extraction {
	ex := domain.NewExtraction()
	ex.Fields["35"] = domain.Field{Name: "MsgType", Datatype: "String", EnumRef: "35", History: added()}
	ex.Fields["55"] = domain.Field{Name: "Symbol", Datatype: "String", History: added()}
	ex.Fields["372"] = domain.Field{Name: "RefMsgType", Datatype: "String", EnumRef: "35", History: added()}
	ex.Enums = []domain.Enum{
		{Parent: "35", Value: "0", Name: "Heartbeat", History: added()},
		{Parent: "35", Value: "A", Name: "Logon", History: added()},
	}
	ex.Components["1003"] = domain.Component{Name: "Instrument", History: added()}
	ex.Components["1004"] = domain.Component{Name: "Empty", History: added()}
	ex.Messages["0"] = domain.Message{Name: "Heartbeat", ComponentRef: "1", History: added()}
	ex.Contents = []domain.MessageContent{
		{Parent: "1", Tag: "Instrument", Position: 2.0, History: added()},
		{Parent: "1", Tag: "55", Position: 1.0, History: added()},
		{Parent: "1003", Tag: "55", Position: 1.0, History: added()},
	}
	return ex
}

func TestDefault_Link(t *testing.T) {
	observe(t)

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)

	require.Len(t, repo.Fields["35"].Enum, 2)
	assert.Equal(t, "Heartbeat", repo.Fields["35"].Enum[0].Name)
	assert.Nil(t, repo.Fields["55"].Enum)

	hb := repo.Messages["0"]
	require.Len(t, hb.Breakdown, 2)
	assert.Empty(t, hb.ComponentRef)
	assert.Equal(t, domain.ContentField, hb.Breakdown[0].Kind)
	assert.Equal(t, domain.ContentComponent, hb.Breakdown[1].Kind)
}

func TestLink_RefMsgTypeSuppressed(t *testing.T) {
	logs := observe(t)

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)

	f := repo.Fields["372"]
	assert.Nil(t, f.Enum)
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"enum"`)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessageSnippet("RefMsgType")
	assert.Equal(t, 1, warnings.Len())
}

func TestLink_NoSuppressionWithoutPolicy(t *testing.T) {
	observe(t)

	repo, err := Default(domain.Policy{}).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)
	assert.Len(t, repo.Fields["372"].Enum, 2)
}

func TestLink_BreakdownOrderedByPosition(t *testing.T) {
	observe(t)

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)

	rows := repo.Messages["0"].Breakdown
	require.Len(t, rows, 2)
	assert.Equal(t, 1.0, rows[0].Position)
	assert.Equal(t, "55", rows[0].Tag)
	assert.Equal(t, 2.0, rows[1].Position)
}

func TestLink_SingleElementGroup(t *testing.T) {
	observe(t)

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)

	rows := repo.Components["1003"].Breakdown
	require.Len(t, rows, 1)
	assert.Equal(t, "55", rows[0].Tag)
	assert.Equal(t, domain.ContentField, rows[0].Kind)
}

func TestLink_EmptyBreakdown(t *testing.T) {
	observe(t)

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)

	c := repo.Components["1004"]
	require.NotNil(t, c.Breakdown)
	assert.Empty(t, c.Breakdown)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"breakdown":[]`)
}

func TestLink_StableTies(t *testing.T) {
	observe(t)

	ex := sampleExtraction()
	ex.Contents = []domain.MessageContent{
		{Parent: "1", Tag: "a", Position: 1},
		{Parent: "1", Tag: "b", Position: 1},
		{Parent: "1", Tag: "c", Position: 0.5},
	}

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
	require.NoError(t, err)

	var tags []string
	for _, row := range repo.Messages["0"].Breakdown {
		tags = append(tags, row.Tag)
	}
	assert.Equal(t, []string{"c", "a", "b"}, tags)
}

func TestLink_UnresolvedEnumIsFatal(t *testing.T) {
	observe(t)

	ex := sampleExtraction()
	ex.Fields["54"] = domain.Field{Name: "Side", EnumRef: "54", History: added()}

	_, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
	require.ErrorIs(t, err, domain.ErrUnresolvedReference)

	var ee *domain.EntityError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "54", ee.Key)
}

func TestLink_UnresolvedContentIsWarning(t *testing.T) {
	logs := observe(t)

	ex := sampleExtraction()
	ex.Contents = append(ex.Contents, domain.MessageContent{Parent: "1", Tag: "Ghost", Position: 3})

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
	require.NoError(t, err)

	rows := repo.Messages["0"].Breakdown
	require.Len(t, rows, 3)
	assert.Empty(t, rows[2].Kind)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Ghost").Len())
}

func TestLink_DoesNotMutateExtraction(t *testing.T) {
	observe(t)

	ex := sampleExtraction()
	before := sampleExtraction()

	_, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(before, ex))
}

func TestLink_OrderIndependent(t *testing.T) {
	observe(t)

	base, err := Default(domain.DefaultPolicy()).Link(context.Background(), sampleExtraction())
	require.NoError(t, err)
	want, err := json.Marshal(base)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		ex := sampleExtraction()
		rng.Shuffle(len(ex.Contents), func(a, b int) {
			ex.Contents[a], ex.Contents[b] = ex.Contents[b], ex.Contents[a]
		})

		repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
		require.NoError(t, err)
		got, err := json.Marshal(repo)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got))
	}
}

func TestLink_Phrases(t *testing.T) {
	logs := observe(t)

	ex := sampleExtraction()
	ex.Abbreviations["Acct"] = domain.Abbreviation{TextID: "AT_Acct", History: added()}
	ex.Fields["55"] = domain.Field{Name: "Symbol", TextID: "FIELD_55", Docs: domain.Documentation{Description: "inline"}, History: added()}
	ex.Fields["1"] = domain.Field{Name: "Account", TextID: "FIELD_1", Docs: domain.Documentation{Description: "kept"}, History: added()}
	ex.Enums[0].TextID = "ENUM_35_0"
	ex.Phrases = map[string]domain.Phrase{
		"AT_Acct":   {Description: "Account\n", AbbreviationTerm: "Account"},
		"FIELD_55":  {Description: "Ticker symbol.\n", AbbreviationTerm: "Ticker symbol."},
		"ENUM_35_0": {Description: "Heartbeat message.\n", AbbreviationTerm: "Heartbeat message."},
	}

	repo, err := Default(domain.DefaultPolicy()).Link(context.Background(), ex)
	require.NoError(t, err)

	assert.Equal(t, "Account", repo.Abbreviations["Acct"].Term)
	assert.Equal(t, "Account\n", repo.Abbreviations["Acct"].Docs.Description)
	assert.Equal(t, "Ticker symbol.\n", repo.Fields["55"].Docs.Description)
	assert.Equal(t, "kept", repo.Fields["1"].Docs.Description)
	assert.Equal(t, "Heartbeat message.\n", repo.Fields["35"].Enum[0].Docs.Description)
	assert.Equal(t, 1, logs.FilterMessageSnippet("FIELD_1").Len())

	// The extraction is left untouched.
	assert.Empty(t, ex.Abbreviations["Acct"].Term)
}

func TestLink_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Default(domain.DefaultPolicy()).Link(ctx, sampleExtraction())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_NilExtraction(t *testing.T) {
	_, err := NewPipeline(domain.DefaultPolicy()).Link(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
