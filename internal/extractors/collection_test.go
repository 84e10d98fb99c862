package extractors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

func fragment(kind domain.Kind, name, xml string) *domain.Fragment {
	return &domain.Fragment{Kind: kind, Name: name, Data: []byte(xml)}
}

func TestExtractAll_DuplicateKey(t *testing.T) {
	root := element(t, `<Fields>
		<Field added="FIX.4.0"><Tag>1</Tag></Field>
		<Field added="FIX.4.0"><Tag>1</Tag></Field>
	</Fields>`)

	_, err := ExtractAll(root, domain.KindField, Field, Options{})
	require.ErrorIs(t, err, domain.ErrDuplicateKey)

	var ee *domain.EntityError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "1", ee.Key)
}

func TestExtractAll_NilRoot(t *testing.T) {
	out, err := ExtractAll(nil, domain.KindField, Field, Options{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestInto_Basic(t *testing.T) {
	ex := domain.NewExtraction()

	require.NoError(t, Into(ex, fragment(domain.KindField, "Fields.xml", `<Fields>
		<Field added="FIX.2.7"><Tag>54</Tag><Name>Side</Name><Type>char</Type><EnumDatatype>54</EnumDatatype></Field>
		<Field added="FIX.4.0"><Tag>55</Tag><Name>Symbol</Name><Type>String</Type></Field>
	</Fields>`), Options{}))
	require.NoError(t, Into(ex, fragment(domain.KindEnum, "Enums.xml", `<Enums>
		<Enum added="FIX.2.7"><Tag>54</Tag><Value>1</Value><SymbolicName>Buy</SymbolicName></Enum>
		<Enum added="FIX.2.7"><Tag>54</Tag><Value>2</Value><SymbolicName>Sell</SymbolicName></Enum>
	</Enums>`), Options{}))
	require.NoError(t, Into(ex, fragment(domain.KindMessage, "Messages.xml", `<Messages version="FIX.5.0SP2">
		<Message added="FIX.2.7"><ComponentID>1</ComponentID><MsgType>0</MsgType><Name>Heartbeat</Name></Message>
	</Messages>`), Options{}))
	require.NoError(t, Into(ex, fragment(domain.KindMessageContent, "MsgContents.xml", `<MsgContents>
		<MsgContent added="FIX.2.7"><ComponentID>1</ComponentID><TagText>55</TagText><Position>1</Position><Reqd>0</Reqd></MsgContent>
	</MsgContents>`), Options{}))

	assert.Len(t, ex.Fields, 2)
	assert.Len(t, ex.Enums, 2)
	assert.Len(t, ex.Contents, 1)
	assert.Equal(t, "1", ex.Messages["0"].ComponentRef)
	assert.Equal(t, domain.Version{Protocol: "fix", Major: "5", Minor: "0", ServicePack: "2"}, ex.Version)
}

func TestInto_Unified(t *testing.T) {
	ex := domain.NewExtraction()

	require.NoError(t, Into(ex, fragment(domain.KindField, "Fields.xml", `<fields version="FIX.4.4">
		<field id="54" name="Side" type="char" added="FIX.2.7">
			<enum value="1" symbolicName="Buy" added="FIX.2.7"/>
		</field>
	</fields>`), Options{}))
	require.NoError(t, Into(ex, fragment(domain.KindMessage, "Messages.xml", `<messages version="FIX.5.0">
		<message msgType="D" name="NewOrderSingle" added="FIX.2.7">
			<fieldRef id="54" required="1" added="FIX.2.7"/>
		</message>
	</messages>`), Options{}))
	require.NoError(t, Into(ex, fragment(domain.KindComponent, "Components.xml", `<components>
		<component id="1003" name="Instrument" type="Block" added="FIX.4.4">
			<fieldRef id="55" added="FIX.4.4"/>
		</component>
	</components>`), Options{}))

	require.Len(t, ex.Enums, 1)
	assert.Equal(t, "54", ex.Enums[0].Parent)
	assert.Equal(t, "54", ex.Fields["54"].EnumRef)

	assert.Equal(t, "D", ex.Messages["D"].ComponentRef)
	require.Len(t, ex.Contents, 2)
	assert.Equal(t, "D", ex.Contents[0].Parent)
	assert.Equal(t, "1003", ex.Contents[1].Parent)

	// The messages fragment wins over the version of earlier fragments.
	assert.Equal(t, "5", ex.Version.Major)
}

func TestInto_AttributesFragment(t *testing.T) {
	ex := domain.NewExtraction()

	err := Into(ex, fragment(domain.KindEnum, "Enums.xml", `<Enums><Enum added="FIX.2.7"><Value>1</Value></Enum></Enums>`), Options{})
	require.ErrorIs(t, err, domain.ErrRequiredFieldMissing)

	var ee *domain.EntityError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "Enums.xml", ee.Fragment)
	assert.Equal(t, domain.KindEnum, ee.Kind)
	assert.Equal(t, "Tag", ee.Field)
}

func TestInto_MalformedXML(t *testing.T) {
	err := Into(domain.NewExtraction(), fragment(domain.KindField, "Fields.xml", `<Fields><Field name=></Field></Fields>`), Options{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Fields.xml")
}

func TestInto_DuplicateAcrossFragments(t *testing.T) {
	ex := domain.NewExtraction()
	frag := fragment(domain.KindAbbreviation, "Abbreviations.xml", `<Abbreviations><Abbreviation abbrTerm="Acct" added="FIX.4.4"/></Abbreviations>`)

	require.NoError(t, Into(ex, frag, Options{}))
	assert.ErrorIs(t, Into(ex, frag, Options{}), domain.ErrDuplicateKey)
}

func TestInto_Phrases(t *testing.T) {
	ex := domain.NewExtraction()
	require.Nil(t, ex.Phrases)

	require.NoError(t, Into(ex, fragment(domain.KindPhrase, "Phrases.xml", `<phrases>
		<phrase textId="FIELD_55"><text><para>Ticker symbol.</para></text></phrase>
	</phrases>`), Options{}))

	assert.Equal(t, "Ticker symbol.\n", ex.Phrases["FIELD_55"].Description)
}

func TestForKind(t *testing.T) {
	for _, kind := range domain.DocumentKinds {
		_, ok := ForKind(kind)
		assert.True(t, ok, kind)
	}
	_, ok := ForKind(domain.KindEnum)
	assert.False(t, ok)
}

func TestRootVersion(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want *domain.Version
	}{
		{
			name: "service pack with extension pack attribute",
			xml:  `<Messages version="FIX.5.0SP2" extensionPack="254"/>`,
			want: &domain.Version{Protocol: "fix", Major: "5", Minor: "0", ServicePack: "2", ExtensionPack: "254"},
		},
		{
			name: "no extension pack",
			xml:  `<Fields version="FIXT.1.1" extensionPack="-1"/>`,
			want: &domain.Version{Protocol: "fixt", Major: "1", Minor: "1", ServicePack: "0"},
		},
		{
			name: "absent",
			xml:  `<Fields/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RootVersion(element(t, tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootVersion_Malformed(t *testing.T) {
	_, err := RootVersion(element(t, `<Messages version="FIX5"/>`))
	assert.ErrorIs(t, err, domain.ErrMalformedVersion)
}
