// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import "strings"

// field names the semantic columns the parser extracts. Each maps to a
// list of accepted literal header names, covering the common reference
// manager exports (Zotero, Mendeley, EndNote) without requiring the user
// to rename columns.
type field string

const (
	fieldKey      field = "key"
	fieldType     field = "type"
	fieldYear     field = "year"
	fieldAuthor   field = "author"
	fieldTitle    field = "title"
	fieldAbstract field = "abstract"
	fieldVenue    field = "venue"
	fieldPubTitle field = "publication_title"
	fieldDOI      field = "doi"
	fieldURL      field = "url"
	fieldTags     field = "tags"
	fieldAutoTags field = "auto_tags"
)

// headerCandidates maps each semantic field to accepted column names, in
// preference order. Matching is case-insensitive.
var headerCandidates = map[field][]string{
	fieldKey:      {"key", "id", "item key", "citation key"},
	fieldType:     {"item type", "type", "publication type", "document type"},
	fieldYear:     {"publication year", "year", "date", "pub year"},
	fieldAuthor:   {"author", "authors", "creator", "creators"},
	fieldTitle:    {"title", "document title", "article title"},
	fieldAbstract: {"abstract note", "abstract", "summary"},
	fieldVenue:    {"venue", "journal", "conference name", "source title"},
	fieldPubTitle: {"publication title", "publication", "journal title"},
	fieldDOI:      {"doi"},
	fieldURL:      {"url", "link"},
	fieldTags:     {"manual tags", "tags", "keywords", "author keywords"},
	fieldAutoTags: {"automatic tags", "auto tags", "index keywords"},
}

// headerIndex resolves semantic fields to column positions for one
// dataset. A field missing from the header resolves to -1.
type headerIndex map[field]int

// resolveHeaders builds the field-to-column mapping for a header row.
// Each field tries an exact case-insensitive match against its candidate
// names first, then falls back to substring containment: the first header
// that case-insensitively contains a candidate wins.
func resolveHeaders(header []string) headerIndex {
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	idx := make(headerIndex, len(headerCandidates))
	for f, candidates := range headerCandidates {
		idx[f] = -1
		for _, cand := range candidates {
			if pos := findHeader(lowered, cand); pos >= 0 {
				idx[f] = pos
				break
			}
		}
	}
	return idx
}

func findHeader(lowered []string, candidate string) int {
	for i, h := range lowered {
		if h == candidate {
			return i
		}
	}
	for i, h := range lowered {
		if strings.Contains(h, candidate) {
			return i
		}
	}
	return -1
}

// get returns the trimmed cell for a resolved field, or "" when the field
// did not resolve or the row is short.
func (idx headerIndex) get(row []string, f field) string {
	pos, ok := idx[f]
	if !ok || pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}
