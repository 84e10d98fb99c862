package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/adapters/driven/schema"
	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

const srcDir = "src"

var fixture = map[string]string{
	"Fields.xml": `<Fields version="FIX.5.0SP2">
		<Field added="FIX.2.7"><Tag>35</Tag><Name>MsgType</Name><Type>String</Type><EnumDatatype>35</EnumDatatype><Description>Defines the message type. Recieve is mandatory.</Description></Field>
		<Field added="FIX.2.7"><Tag>55</Tag><Name>Symbol</Name><Type>String</Type></Field>
		<Field added="FIX.4.4"><Tag>100</Tag><Name>ExDestination</Name><Type>Exchange</Type></Field>
	</Fields>`,
	"Enums.xml": `<Enums>
		<Enum added="FIX.2.7"><Tag>35</Tag><Value>0</Value><SymbolicName>Heartbeat</SymbolicName></Enum>
		<Enum added="FIX.2.7"><Tag>35</Tag><Value>A</Value><SymbolicName>Logon</SymbolicName></Enum>
	</Enums>`,
	"Messages.xml": `<Messages version="FIX.5.0SP2">
		<Message added="FIX.2.7"><ComponentID>1</ComponentID><MsgType>0</MsgType><Name>Heartbeat</Name><CategoryID>Session</CategoryID><SectionID>Session</SectionID></Message>
	</Messages>`,
	"MsgContents.xml": `<MsgContents>
		<MsgContent added="FIX.2.7"><ComponentID>1</ComponentID><TagText>55</TagText><Position>2</Position><Reqd>0</Reqd></MsgContent>
		<MsgContent added="FIX.2.7"><ComponentID>1</ComponentID><TagText>35</TagText><Position>1</Position><Reqd>1</Reqd></MsgContent>
	</MsgContents>`,
	"Components.xml": `<Components>
		<Component added="FIX.4.4"><ComponentID>1003</ComponentID><Name>Instrument</Name></Component>
	</Components>`,
}

var fixedTime = time.Date(2024, 6, 1, 9, 30, 15, 0, time.UTC)

func newFixtureStore(t *testing.T, skip ...string) *memory.DocumentStore {
	t.Helper()
	store := memory.NewDocumentStore()
	for name, data := range fixture {
		if contains(skip, name) {
			continue
		}
		require.NoError(t, store.Write(context.Background(), filepath.Join(srcDir, name), []byte(data)))
	}
	return store
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func validator(t *testing.T) *schema.Validator {
	t.Helper()
	v, err := schema.Default()
	require.NoError(t, err)
	return v
}

type checksumFunc func(ctx context.Context, dir string) (string, error)

func (f checksumFunc) Checksum(ctx context.Context, dir string) (string, error) { return f(ctx, dir) }

type replacer map[string]string

func (r replacer) Transform(text string) string {
	for from, to := range r {
		text = strings.ReplaceAll(text, from, to)
	}
	return text
}

// patchFiles serves patch operations from memory.
type patchFiles map[string][]domain.PatchOperation

func (p patchFiles) ReadPatch(_ context.Context, path string) ([]domain.PatchOperation, error) {
	ops, ok := p[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ops, nil
}

type fixtureOptions struct {
	patches patchFiles
	ledger  driven.LedgerStore
}

func newRepositoryService(t *testing.T, store *memory.DocumentStore, opts fixtureOptions) *RepositoryService {
	t.Helper()
	settings := domain.DefaultSettings()
	v := validator(t)

	patcher := NewPatchService(v, store, opts.patches, nil, settings)
	patcher.SetClock(func() time.Time { return fixedTime })

	svc := NewRepositoryService(
		store,
		checksumFunc(func(context.Context, string) (string, error) { return "cafebabe", nil }),
		v,
		store,
		replacer{"Recieve": "Receive"},
		opts.ledger,
		patcher,
		settings,
		"1.0.0-test",
	)
	svc.SetClock(func() time.Time { return fixedTime })
	return svc
}
