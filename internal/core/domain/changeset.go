package domain

// ChangeType is the kind of change an extension pack applies to an entity.
type ChangeType string

// Change types, in patch order.
const (
	ChangeAdded      ChangeType = "added"
	ChangeUpdated    ChangeType = "updated"
	ChangeDeprecated ChangeType = "deprecated"
	ChangeRemoved    ChangeType = "removed"
)

// ChangeTypes lists change types in the order their operations are emitted.
var ChangeTypes = []ChangeType{ChangeAdded, ChangeUpdated, ChangeDeprecated, ChangeRemoved}

// EntityChanges maps a kind to the changed records keyed by primary key.
// Records have the shape produced by the extractor of their kind.
type EntityChanges map[Kind]map[string]any

// ChangeSet is the structured form of one extension pack.
// Removed entities only contribute their keys.
type ChangeSet struct {
	ID            string                       `json:"id"`
	ApprovalState string                       `json:"approvalState,omitempty"`
	Description   string                       `json:"description,omitempty"`
	Changes       map[ChangeType]EntityChanges `json:"changes"`
}

// NewChangeSet returns a change set with an empty map per change type and kind.
func NewChangeSet(id string) *ChangeSet {
	cs := &ChangeSet{
		ID:      id,
		Changes: make(map[ChangeType]EntityChanges, len(ChangeTypes)),
	}
	for _, ct := range ChangeTypes {
		ec := make(EntityChanges, len(DocumentKinds))
		for _, kind := range DocumentKinds {
			ec[kind] = make(map[string]any)
		}
		cs.Changes[ct] = ec
	}
	return cs
}

// Put records a change. A later change of the same type and key wins.
func (c *ChangeSet) Put(ct ChangeType, kind Kind, key string, rec any) {
	ec, ok := c.Changes[ct]
	if !ok {
		ec = make(EntityChanges)
		c.Changes[ct] = ec
	}
	m, ok := ec[kind]
	if !ok {
		m = make(map[string]any)
		ec[kind] = m
	}
	m[key] = rec
}

// Len returns the total number of entity changes.
func (c *ChangeSet) Len() int {
	n := 0
	for _, ec := range c.Changes {
		for _, m := range ec {
			n += len(m)
		}
	}
	return n
}

// Patch operation names (RFC 6902).
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

// PatchOperation is one RFC 6902 operation.
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value,omitempty"`
}
