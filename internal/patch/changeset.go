package patch

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/jsonpointer"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// historyMember is the member holding provenance inside an entity.
const historyMember = "history"

// FromChangeSet converts cs into an ordered operation list.
//
// Operations are grouped by change type (added, updated, deprecated,
// removed), then by kind in document order, then by key. Updates set one
// member at a time, and one nested member at a time for objects such as
// docs, fixml and history, so that linked data such as breakdowns and
// sibling documentation survives. Each is an add, which replaces an
// existing member and inserts a missing one. Deprecations only touch the
// history block.
func FromChangeSet(cs *domain.ChangeSet) ([]domain.PatchOperation, error) {
	var ops []domain.PatchOperation
	for _, ct := range domain.ChangeTypes {
		ec := cs.Changes[ct]
		for _, kind := range domain.DocumentKinds {
			recs := ec[kind]
			for _, key := range domain.SortKeys(recs) {
				path := EntityPath(kind, key)
				switch ct {
				case domain.ChangeAdded:
					ops = append(ops, domain.PatchOperation{Op: domain.OpAdd, Path: path, Value: recs[key]})
				case domain.ChangeUpdated:
					members, err := members(recs[key])
					if err != nil {
						return nil, fmt.Errorf("%s: %w", path, err)
					}
					ops = append(ops, memberOps(path, members)...)
				case domain.ChangeDeprecated:
					members, err := members(recs[key])
					if err != nil {
						return nil, fmt.Errorf("%s: %w", path, err)
					}
					ops = append(ops, leafOps(path+"/"+historyMember, members[historyMember])...)
				case domain.ChangeRemoved:
					ops = append(ops, domain.PatchOperation{Op: domain.OpRemove, Path: path})
				}
			}
		}
	}
	return ops, nil
}

// EntityPath returns the pointer of an entity, e.g. "/fields/55".
func EntityPath(kind domain.Kind, key string) string {
	return "/" + jsonpointer.Escape(string(kind)) + "/" + jsonpointer.Escape(key)
}

// members returns the present JSON members of rec.
func members(rec any) (map[string]any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: record is not an object: %w", domain.ErrInvalidInput, err)
	}
	return out, nil
}

// memberOps sets every present member of an updated entity, history last.
func memberOps(path string, m map[string]any) []domain.PatchOperation {
	var ops []domain.PatchOperation
	for _, name := range domain.SortKeys(m) {
		if name == historyMember {
			continue
		}
		ops = append(ops, leafOps(path+"/"+jsonpointer.Escape(name), m[name])...)
	}
	return append(ops, leafOps(path+"/"+historyMember, m[historyMember])...)
}

// leafOps adds v at path, or each member of v when it is an object.
// Values below that level, such as the versions of a history block, are
// set whole.
func leafOps(path string, v any) []domain.PatchOperation {
	if v == nil {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return []domain.PatchOperation{{Op: domain.OpAdd, Path: path, Value: v}}
	}
	var ops []domain.PatchOperation
	for _, name := range domain.SortKeys(obj) {
		ops = append(ops, domain.PatchOperation{
			Op:    domain.OpAdd,
			Path:  path + "/" + jsonpointer.Escape(name),
			Value: obj[name],
		})
	}
	return ops
}
