package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeSet_Put(t *testing.T) {
	cs := NewChangeSet("254")
	assert.Zero(t, cs.Len())
	assert.Len(t, cs.Changes, len(ChangeTypes))

	cs.Put(ChangeAdded, KindAbbreviation, "FOO", Abbreviation{Term: "Foo"})
	cs.Put(ChangeUpdated, KindField, "100", Field{Name: "ExDestination"})
	cs.Put(ChangeUpdated, KindField, "100", Field{Name: "ExDest"})
	cs.Put(ChangeRemoved, Kind("custom"), "x", nil)

	assert.Equal(t, 3, cs.Len())
	assert.Equal(t, Field{Name: "ExDest"}, cs.Changes[ChangeUpdated][KindField]["100"])
}
