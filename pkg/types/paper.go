// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord holds one normalized bibliographic entry parsed from a
// literature review export.
type PaperRecord struct {
	// Key is a stable unique identifier, either taken from the source
	// export or derived from the title and first author.
	Key string `json:"key" yaml:"key"`

	// ItemType is the publication kind (e.g. "journalArticle",
	// "conferencePaper"). Free-form, as exported.
	ItemType string `json:"item_type,omitempty" yaml:"item_type,omitempty"`

	// PublicationYear is the publication year, or 0 when absent or
	// outside the configured plausible range.
	PublicationYear int `json:"publication_year,omitempty" yaml:"publication_year,omitempty"`

	// Authors lists author display names in byline order. Not
	// deduplicated at this layer.
	Authors []string `json:"authors" yaml:"authors"`

	// Title is the paper title. Records without a usable title are
	// dropped during parsing.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Venue is the publication venue (journal or conference name).
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// PublicationTitle is the source export's publication title column
	// when it resolves separately from Venue.
	PublicationTitle string `json:"publication_title,omitempty" yaml:"publication_title,omitempty"`

	// DOI is the Digital Object Identifier, when present. Validated but
	// never required.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL is an optional link to the paper.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Tags holds free-text keywords merged from manual and automatic
	// tag columns.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// HasYear reports whether the record carries a plausible publication year.
func (p PaperRecord) HasYear() bool {
	return p.PublicationYear != 0
}

// SearchText returns the concatenated text used for keyword scoring:
// title, abstract, and tags joined by spaces.
func (p PaperRecord) SearchText() string {
	text := p.Title + " " + p.Abstract
	for _, t := range p.Tags {
		text += " " + t
	}
	return text
}
