package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeys_CaseInsensitive(t *testing.T) {
	m := map[string]int{"b": 1, "A": 2, "a": 3, "C": 4, "10": 5, "9": 6}
	assert.Equal(t, []string{"10", "9", "A", "a", "b", "C"}, SortKeys(m))
}

func TestKeyed_MarshalJSON(t *testing.T) {
	k := Keyed[Section]{
		"Session":  {Name: "Session"},
		"app":      {Name: "Application"},
		"Business": {Name: "Business"},
	}

	data, err := json.Marshal(k)
	require.NoError(t, err)
	assert.Equal(t, `{"app":{"name":"Application"},"Business":{"name":"Business"},"Session":{"name":"Session"}}`, string(data))
}

func TestKeyed_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Keyed[Field]{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var nilMap Keyed[Field]
	data, err = json.Marshal(nilMap)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestKeyed_UnmarshalJSON(t *testing.T) {
	var k Keyed[Datatype]
	require.NoError(t, json.Unmarshal([]byte(`{"int":{"base":"int"},"Length":{"base":"int"}}`), &k))
	assert.Equal(t, []string{"int", "Length"}, k.SortedKeys())
}
