// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate enforces field-level invariants on parsed records,
// deduplicates near-identical titles, and reports dataset quality.
// Only a missing title invalidates a record; everything else is advisory.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/meshintel/litscope/pkg/types"
)

// doiPattern is the registrant/suffix shape every modern DOI follows.
var doiPattern = regexp.MustCompile(`^10\.\d{4,}/\S+$`)

var numericName = regexp.MustCompile(`^\d+$`)

// plausible year bounds for the advisory range check. Parsing already
// discards out-of-range years, so a violation here means the record was
// built by hand rather than parsed.
const (
	warnYearMin = 1900
	warnYearMax = 2030
)

// Check validates a single record. The only hard error is a missing
// title; warnings cover probable data-entry problems that should not
// block analysis.
func Check(p types.PaperRecord) types.Validation {
	v := types.Validation{Valid: true}

	if strings.TrimSpace(p.Title) == "" {
		v.Valid = false
		v.Errors = append(v.Errors, "missing title")
	}

	if len(p.Authors) == 0 {
		v.Warnings = append(v.Warnings, "no authors listed")
	}
	for _, a := range p.Authors {
		if w := checkAuthorName(a); w != "" {
			v.Warnings = append(v.Warnings, w)
		}
	}

	if p.PublicationYear != 0 && (p.PublicationYear < warnYearMin || p.PublicationYear > warnYearMax) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("publication year %d outside plausible range", p.PublicationYear))
	}

	if p.DOI != "" && !IsValidDOI(p.DOI) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("malformed DOI %q", p.DOI))
	}
	if p.URL != "" && !isValidURL(p.URL) {
		v.Warnings = append(v.Warnings, fmt.Sprintf("malformed URL %q", p.URL))
	}

	return v
}

// IsValidDOI reports whether s matches the DOI registrant/suffix format.
func IsValidDOI(s string) bool {
	return doiPattern.MatchString(strings.TrimSpace(s))
}

// isValidURL reports whether s parses as an absolute URL with a host.
func isValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.Scheme != "" && u.Host != ""
}

// checkAuthorName flags names that are too short, purely numeric, or
// carry excessive special-character density (>30% non-alphanumeric,
// ignoring spaces). Returns "" for plausible names.
func checkAuthorName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return fmt.Sprintf("author name %q too short", trimmed)
	}
	if numericName.MatchString(trimmed) {
		return fmt.Sprintf("author name %q is numeric", trimmed)
	}

	var special, total int
	for _, r := range trimmed {
		if r == ' ' {
			continue
		}
		total++
		if !isAlnum(r) && r != '.' && r != '-' && r != '\'' {
			special++
		}
	}
	if total > 0 && float64(special)/float64(total) > 0.3 {
		return fmt.Sprintf("author name %q has excessive special characters", trimmed)
	}
	return ""
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 127
}
