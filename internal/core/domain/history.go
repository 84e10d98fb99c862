package domain

// History records which protocol versions introduced, changed, deprecated
// or replaced an entity. Only members for which data exists are set.
type History struct {
	Added       *Version `json:"added,omitempty"`
	Updated     *Version `json:"updated,omitempty"`
	Deprecated  *Version `json:"deprecated,omitempty"`
	Replaced    *Version `json:"replaced,omitempty"`
	Replacement string   `json:"replacement,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

// IsZero reports whether no provenance is recorded.
func (h History) IsZero() bool {
	return h.Added == nil && h.Updated == nil && h.Deprecated == nil &&
		h.Replaced == nil && h.Replacement == "" && len(h.Issues) == 0
}

// Documentation is the human-readable text attached to an entity.
type Documentation struct {
	Description string   `json:"description,omitempty"`
	Usage       string   `json:"usage,omitempty"`
	Volume      string   `json:"volume,omitempty"`
	Elaboration string   `json:"elaboration,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// IsZero reports whether no text is present.
func (d Documentation) IsZero() bool {
	return d.Description == "" && d.Usage == "" && d.Volume == "" &&
		d.Elaboration == "" && len(d.Examples) == 0
}

// Texts returns pointers to every prose member, for in-place transformation.
func (d *Documentation) Texts() []*string {
	texts := []*string{&d.Description, &d.Usage, &d.Volume, &d.Elaboration}
	for i := range d.Examples {
		texts = append(texts, &d.Examples[i])
	}
	return texts
}

// FIXML is the FIXML schema metadata of sections, categories and messages.
type FIXML struct {
	Filename     string `json:"filename,omitempty"`
	GenerateImpl *bool  `json:"generateImpl,omitempty"`
	Optional     *bool  `json:"optional,omitempty"`
}

// IsZero reports whether no metadata is present.
func (f FIXML) IsZero() bool {
	return f.Filename == "" && f.GenerateImpl == nil && f.Optional == nil
}
