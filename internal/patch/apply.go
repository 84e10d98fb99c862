package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-openapi/jsonpointer"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Apply applies ops to a copy of doc and returns the result.
//
// Entity-level preconditions are checked before anything is applied: an add
// of an entity that already exists, a remove of one that does not, or any
// operation below a missing entity is domain.ErrPatchConflict. Existence is
// tracked through the list, so an entity added earlier in the same list
// counts as present. An add below an existing entity creates missing
// parent objects, e.g. docs for a first elaboration.
func Apply(doc []byte, ops []domain.PatchOperation) ([]byte, error) {
	if len(ops) == 0 {
		return bytes.Clone(doc), nil
	}
	if err := checkPreconditions(doc, ops); err != nil {
		return nil, err
	}
	return apply(doc, ops)
}

func apply(doc []byte, ops []domain.PatchOperation) ([]byte, error) {
	raw, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: encode patch: %w", domain.ErrInvalidInput, err)
	}
	p, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode patch: %w", domain.ErrInvalidInput, err)
	}
	opts := jsonpatch.NewApplyOptions()
	opts.EnsurePathExistsOnAdd = true
	out, err := p.ApplyWithOptions(doc, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPatchConflict, err)
	}
	return out, nil
}

func checkPreconditions(doc []byte, ops []domain.PatchOperation) error {
	present, err := entityIndex(doc)
	if err != nil {
		return err
	}

	for i, op := range ops {
		kind, key, depth, ok := entityOf(op.Path)
		if !ok {
			continue
		}
		exists := present[kind][key]
		if depth > 0 {
			if !exists {
				return fmt.Errorf("%w: op %d: %s %s: no such entity", domain.ErrPatchConflict, i, op.Op, op.Path)
			}
			continue
		}
		switch op.Op {
		case domain.OpAdd:
			if exists {
				return fmt.Errorf("%w: op %d: add %s: entity already exists", domain.ErrPatchConflict, i, op.Path)
			}
			present[kind][key] = true
		case domain.OpRemove:
			if !exists {
				return fmt.Errorf("%w: op %d: remove %s: no such entity", domain.ErrPatchConflict, i, op.Path)
			}
			delete(present[kind], key)
		}
	}
	return nil
}

// entityIndex returns the entity keys present per kind.
func entityIndex(doc []byte) (map[domain.Kind]map[string]bool, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", domain.ErrInvalidInput, err)
	}

	index := make(map[domain.Kind]map[string]bool, len(domain.DocumentKinds))
	for _, kind := range domain.DocumentKinds {
		index[kind] = make(map[string]bool)
		raw, ok := top[string(kind)]
		if !ok {
			continue
		}
		var entities map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entities); err != nil {
			return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrInvalidInput, kind, err)
		}
		for key := range entities {
			index[kind][key] = true
		}
	}
	return index, nil
}

// entityOf reports the entity path addresses and how many tokens below
// the entity it points. Depth 0 is the entity itself.
func entityOf(path string) (domain.Kind, string, int, bool) {
	tokens, err := tokens(path)
	if err != nil || len(tokens) < 2 {
		return "", "", 0, false
	}
	kind := domain.Kind(tokens[0])
	if !kind.IsKeyed() {
		return "", "", 0, false
	}
	return kind, tokens[1], len(tokens) - 2, true
}

func tokens(path string) ([]string, error) {
	p, err := jsonpointer.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: pointer %q: %w", domain.ErrInvalidInput, path, err)
	}
	return p.DecodedTokens(), nil
}

// parent splits path into its parent pointer and last decoded token.
func parent(path string) (string, string, error) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", "", fmt.Errorf("%w: pointer %q has no parent", domain.ErrInvalidInput, path)
	}
	last, err := tokens("/" + path[i+1:])
	if err != nil {
		return "", "", err
	}
	return path[:i], last[0], nil
}
