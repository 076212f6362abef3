// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authornet deduplicates author name variants, builds per-author
// profiles, and derives the co-authorship graph with its communities.
package authornet

import (
	"regexp"
	"strings"
)

var honorific = regexp.MustCompile(`(?i)^(dr|prof|mr|ms|mrs)\.?\s+`)

var suffix = regexp.MustCompile(`(?i)[\s,]+(jr|sr|iii|iv)\.?$`)

var spaces = regexp.MustCompile(`\s+`)

// NormalizeName strips honorific prefixes and generational suffixes,
// collapses whitespace, and lower-cases the result. The returned string
// is the identity key used for merging name variants.
func NormalizeName(name string) string {
	n := strings.TrimSpace(name)
	n = honorific.ReplaceAllString(n, "")
	n = suffix.ReplaceAllString(n, "")
	n = strings.ReplaceAll(n, ",", " ")
	n = spaces.ReplaceAllString(n, " ")
	return strings.ToLower(strings.TrimSpace(n))
}

// Similar reports whether two raw author strings plausibly name the same
// person. Rules, in order:
//
//  1. normalized forms match exactly;
//  2. same token count, and each token pair matches exactly or one side
//     is a single-letter initial matching the other's first character
//     ("J. Smith" vs "John Smith");
//  3. a simple two-token name in swapped order ("Smith John" vs
//     "John Smith").
//
// Known limitation: rule 2 can over-merge distinct people who share a
// surname and a first initial. The dashboard favors recall here; callers
// needing precision must disambiguate upstream.
func Similar(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	ta, tb := strings.Fields(na), strings.Fields(nb)

	if len(ta) == len(tb) {
		all := true
		for i := range ta {
			if !tokenMatch(ta[i], tb[i]) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	if len(ta) == 2 && len(tb) == 2 {
		return tokenMatch(ta[0], tb[1]) && tokenMatch(ta[1], tb[0])
	}
	return false
}

// tokenMatch reports whether two name tokens are equal, or one is a
// single-letter initial matching the other's leading character.
func tokenMatch(a, b string) bool {
	a = strings.TrimSuffix(a, ".")
	b = strings.TrimSuffix(b, ".")
	if a == b {
		return true
	}
	if len(a) == 1 && len(b) > 0 {
		return a[0] == b[0]
	}
	if len(b) == 1 && len(a) > 0 {
		return b[0] == a[0]
	}
	return false
}
