// Package typos rewrites known misspellings in documentation prose.
package typos

import (
	"sort"
	"strings"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// Ensure Replacer implements the interface.
var _ driven.DescriptionTransformer = (*Replacer)(nil)

// Replacer substitutes every occurrence of a table key with its value.
// At a given position the longest matching key wins.
type Replacer struct {
	r *strings.Replacer
}

// New builds a replacer from table. Empty keys are ignored; a nil or
// empty table yields nil, which callers treat as no transformer.
func New(table map[string]string) *Replacer {
	keys := make([]string, 0, len(table))
	for k := range table {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, table[k])
	}
	return &Replacer{r: strings.NewReplacer(pairs...)}
}

// Transform returns text with every misspelling replaced.
func (r *Replacer) Transform(text string) string {
	return r.r.Replace(text)
}
