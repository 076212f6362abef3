// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"regexp"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

var titlePunct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeTitle lower-cases a title, strips punctuation, and collapses
// whitespace, producing the key used for duplicate detection.
func NormalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = titlePunct.ReplaceAllString(t, "")
	t = multiSpace.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Dataset validates every record and removes duplicates by normalized
// title, keeping the first occurrence. Returned stats count totals,
// invalid records, duplicates removed, and records that validated with
// warnings.
func Dataset(papers []types.PaperRecord) (valid, invalid []types.PaperRecord, stats types.DatasetStats) {
	stats.Total = len(papers)
	seen := make(map[string]bool, len(papers))

	for _, p := range papers {
		check := Check(p)
		if !check.Valid {
			invalid = append(invalid, p)
			stats.Invalid++
			continue
		}
		if len(check.Warnings) > 0 {
			stats.Warnings++
		}

		key := NormalizeTitle(p.Title)
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true
		valid = append(valid, p)
	}

	stats.Valid = len(valid)
	return valid, invalid, stats
}
