// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest parses heterogeneous bibliographic exports (CSV and
// spreadsheet rows) into normalized PaperRecords. Malformed rows are
// dropped, not raised: real-world exports are messy and per-row failures
// must never abort a dataset.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

// yearToken matches a plausible 4-digit publication year anywhere in a
// date-like cell ("2021-03-04", "March 2021", "2021").
var yearToken = regexp.MustCompile(`\b(1[89]\d{2}|20\d{2})\b`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ParseCSV reads a delimited export with a header row and returns the
// parsed records. RFC 4180 quoting (embedded commas, doubled quotes) is
// handled by the reader. It fails only when the input holds fewer than
// two rows or no row yields a usable record; individual bad rows are
// skipped.
func ParseCSV(r io.Reader, cfg types.ParserConfig) ([]types.PaperRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Recover per-row: a mangled line loses one record,
			// not the dataset.
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset too short: need a header row and at least one data row, got %d row(s)", len(rows))
	}
	return ParseRows(rows[0], rows[1:], cfg)
}

// ParseRows parses spreadsheet-style input: a header row plus data rows.
// It fails only when no row survives parsing.
func ParseRows(header []string, rows [][]string, cfg types.ParserConfig) ([]types.PaperRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset too short: no data rows")
	}

	idx := resolveHeaders(header)
	minTitle := cfg.MinTitleLength
	if minTitle <= 0 {
		minTitle = 3
	}

	papers := make([]types.PaperRecord, 0, len(rows))
	for _, row := range rows {
		p, ok := parseRow(idx, row, cfg, minTitle)
		if !ok {
			continue
		}
		papers = append(papers, p)
	}

	if len(papers) == 0 {
		return nil, fmt.Errorf("no usable records: every row lacked a title or failed to parse")
	}
	return papers, nil
}

// parseRow extracts one record. ok is false when the row has no usable
// title.
func parseRow(idx headerIndex, row []string, cfg types.ParserConfig, minTitle int) (types.PaperRecord, bool) {
	title := idx.get(row, fieldTitle)
	if len(title) < minTitle {
		return types.PaperRecord{}, false
	}

	authors := splitAuthors(idx.get(row, fieldAuthor))

	p := types.PaperRecord{
		Key:              idx.get(row, fieldKey),
		ItemType:         idx.get(row, fieldType),
		PublicationYear:  extractYear(idx.get(row, fieldYear), cfg),
		Authors:          authors,
		Title:            title,
		Abstract:         idx.get(row, fieldAbstract),
		Venue:            idx.get(row, fieldVenue),
		PublicationTitle: idx.get(row, fieldPubTitle),
		DOI:              idx.get(row, fieldDOI),
		URL:              idx.get(row, fieldURL),
		Tags:             mergeTags(idx.get(row, fieldTags), idx.get(row, fieldAutoTags)),
	}

	if p.Key == "" {
		p.Key = deriveKey(title, authors)
	}
	return p, true
}

// extractYear scans a cell for a 4-digit year and bounds it to the
// configured plausible range. Out-of-range years are discarded rather
// than clamped.
func extractYear(cell string, cfg types.ParserConfig) int {
	match := yearToken.FindString(cell)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}

	min, max := cfg.YearMin, cfg.YearMax
	if min == 0 {
		min = 1990
	}
	if max == 0 {
		max = 2025
	}
	if year < min || year > max {
		return 0
	}
	return year
}

// mergeTags combines the manual and automatic tag columns and splits on
// semicolons and commas, deduplicating case-insensitively while keeping
// first-seen casing.
func mergeTags(manual, automatic string) []string {
	combined := manual
	if automatic != "" {
		if combined != "" {
			combined += ";"
		}
		combined += automatic
	}
	if combined == "" {
		return nil
	}

	seen := make(map[string]bool)
	var tags []string
	for _, part := range strings.FieldsFunc(combined, func(r rune) bool { return r == ';' || r == ',' }) {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, tag)
	}
	return tags
}

// deriveKey builds a fallback identifier from the first three title words
// and the first author's surname, lower-cased with punctuation stripped.
func deriveKey(title string, authors []string) string {
	words := strings.Fields(strings.ToLower(title))
	if len(words) > 3 {
		words = words[:3]
	}
	key := strings.Join(words, "-")

	if len(authors) > 0 {
		tokens := strings.Fields(authors[0])
		if len(tokens) > 0 {
			key += "-" + strings.ToLower(tokens[len(tokens)-1])
		}
	}

	key = nonAlnum.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}
