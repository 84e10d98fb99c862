package patch

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-openapi/jsonpointer"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// appendToken is the RFC 6902 array append index.
const appendToken = "-"

// Invert returns the operations that undo ops once they were applied to
// doc. Test operations have no inverse and are dropped.
func Invert(doc []byte, ops []domain.PatchOperation) ([]domain.PatchOperation, error) {
	cur := doc
	steps := make([][]domain.PatchOperation, 0, len(ops))

	for i, op := range ops {
		var state any
		if err := json.Unmarshal(cur, &state); err != nil {
			return nil, fmt.Errorf("%w: decode document: %w", domain.ErrInvalidInput, err)
		}

		next, err := apply(cur, []domain.PatchOperation{op})
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}

		inv, err := inverse(state, next, op)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		steps = append(steps, inv)
		cur = next
	}

	var out []domain.PatchOperation
	for i := len(steps) - 1; i >= 0; i-- {
		out = append(out, steps[i]...)
	}
	return out, nil
}

// inverse undoes op, given the document before and after it.
func inverse(before any, after []byte, op domain.PatchOperation) ([]domain.PatchOperation, error) {
	switch op.Op {
	case domain.OpAdd, domain.OpCopy:
		return undoInsert(before, after, op.Path)
	case domain.OpRemove:
		old, err := get(before, op.Path)
		if err != nil {
			return nil, err
		}
		return []domain.PatchOperation{{Op: domain.OpAdd, Path: op.Path, Value: old}}, nil
	case domain.OpReplace:
		old, err := get(before, op.Path)
		if err != nil {
			return nil, err
		}
		return []domain.PatchOperation{{Op: domain.OpReplace, Path: op.Path, Value: old}}, nil
	case domain.OpMove:
		target, err := resolve(before, after, op.Path)
		if err != nil {
			return nil, err
		}
		undo := []domain.PatchOperation{{Op: domain.OpMove, From: target, Path: op.From}}
		if old, ok := overwritten(before, op.Path); ok {
			undo = append(undo, domain.PatchOperation{Op: domain.OpAdd, Path: op.Path, Value: old})
		}
		return undo, nil
	case domain.OpTest:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", domain.ErrInvalidInput, op.Op)
	}
}

// undoInsert undoes an add or copy at path. An object member that existed
// before is restored. Parents the insert created are removed with it, and
// anything else is removed alone.
func undoInsert(before any, after []byte, path string) ([]domain.PatchOperation, error) {
	if old, ok := overwritten(before, path); ok {
		return []domain.PatchOperation{{Op: domain.OpReplace, Path: path, Value: old}}, nil
	}
	if root, ok := createdParent(before, path); ok {
		return []domain.PatchOperation{{Op: domain.OpRemove, Path: root}}, nil
	}
	target, err := resolve(before, after, path)
	if err != nil {
		return nil, err
	}
	return []domain.PatchOperation{{Op: domain.OpRemove, Path: target}}, nil
}

// createdParent returns the outermost parent of path missing from before.
func createdParent(before any, path string) (string, bool) {
	toks, err := tokens(path)
	if err != nil {
		return "", false
	}
	prefix := ""
	for _, tok := range toks[:max(len(toks)-1, 0)] {
		prefix += "/" + jsonpointer.Escape(tok)
		if _, err := get(before, prefix); err != nil {
			return prefix, true
		}
	}
	return "", false
}

// overwritten returns the value an insert at path replaced. Only object
// members are overwritten; array inserts shift elements instead.
func overwritten(before any, path string) (any, bool) {
	parentPath, _, err := parent(path)
	if err != nil {
		return nil, false
	}
	p, err := get(before, parentPath)
	if err != nil {
		return nil, false
	}
	if _, isObject := p.(map[string]any); !isObject {
		return nil, false
	}
	old, err := get(before, path)
	if err != nil {
		return nil, false
	}
	return old, true
}

// resolve rewrites an array append index to the position the element
// ended up at.
func resolve(before any, after []byte, path string) (string, error) {
	parentPath, last, err := parent(path)
	if err != nil || last != appendToken {
		return path, err
	}
	var state any
	if err := json.Unmarshal(after, &state); err != nil {
		return "", fmt.Errorf("%w: decode document: %w", domain.ErrInvalidInput, err)
	}
	p, err := get(state, parentPath)
	if err != nil {
		return "", err
	}
	arr, ok := p.([]any)
	if !ok {
		return path, nil
	}
	return parentPath + "/" + strconv.Itoa(len(arr)-1), nil
}

func get(doc any, path string) (any, error) {
	p, err := jsonpointer.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: pointer %q: %w", domain.ErrInvalidInput, path, err)
	}
	v, _, err := p.Get(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrPatchConflict, path, err)
	}
	return v, nil
}
