package domain

// Review summarises a canonical document.
type Review struct {
	// Version is the protocol version of the document.
	Version Version

	// Counts holds the number of entities per keyed kind.
	Counts map[Kind]int

	// Sections lists sections in key order with their message tallies.
	Sections []SectionReview
}

// SectionReview tallies the messages of one section by category.
type SectionReview struct {
	ID         string
	Messages   int
	Categories []CategoryReview
}

// CategoryReview tallies the messages of one category.
type CategoryReview struct {
	ID       string
	Messages int
}

// NewReview computes the summary of doc.
func NewReview(doc *Document) *Review {
	r := &Review{
		Version: doc.Meta.Version,
		Counts:  make(map[Kind]int, len(DocumentKinds)),
	}
	for _, kind := range DocumentKinds {
		r.Counts[kind] = doc.Len(kind)
	}

	for _, sectionID := range doc.Sections.SortedKeys() {
		sr := SectionReview{ID: sectionID}
		for _, categoryID := range doc.Categories.SortedKeys() {
			if doc.Categories[categoryID].Section != sectionID {
				continue
			}
			cr := CategoryReview{ID: categoryID}
			for _, msg := range doc.Messages {
				if msg.Section == sectionID && msg.Category == categoryID {
					cr.Messages++
				}
			}
			sr.Messages += cr.Messages
			sr.Categories = append(sr.Categories, cr)
		}
		r.Sections = append(r.Sections, sr)
	}
	return r
}
