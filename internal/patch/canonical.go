package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// metaMember is the envelope member of a canonical document.
const metaMember = "meta"

// Canonicalize restores document member order after patching: meta first,
// then the entity maps in document order with keys sorted the way the
// assembler sorts them, then any other members. Entity records keep their
// member order. indent <= 0 produces compact output.
func Canonicalize(doc []byte, indent int) ([]byte, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", domain.ErrInvalidInput, err)
	}

	order := []string{metaMember}
	for _, kind := range domain.DocumentKinds {
		order = append(order, string(kind))
	}
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		seen[name] = true
	}
	for _, name := range domain.SortKeys(top) {
		if !seen[name] {
			order = append(order, name)
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, name := range order {
		raw, ok := top[name]
		if !ok {
			continue
		}
		if kind := domain.Kind(name); kind.IsKeyed() {
			sorted, err := sortEntities(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			raw = sorted
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(raw)
	}
	buf.WriteByte('}')

	if indent <= 0 {
		var out bytes.Buffer
		if err := json.Compact(&out, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return out.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return out.Bytes(), nil
}

func sortEntities(raw json.RawMessage) (json.RawMessage, error) {
	var entities domain.Keyed[json.RawMessage]
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return entities.MarshalJSON()
}
