// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"regexp"
	"strings"
)

// authorSeparators splits a raw author field on the delimiters seen
// across reference manager exports: semicolons, commas, ampersands, and
// the word "and".
var authorSeparators = regexp.MustCompile(`\s*(?:;|,|&|\band\b)\s*`)

// honorificPrefixes and nameSuffixes are stripped from individual author
// names. Comparison is case-insensitive.
var honorificPrefixes = []string{"dr.", "dr", "prof.", "prof", "mr.", "mr", "ms.", "ms", "mrs.", "mrs"}

var nameSuffixes = []string{"jr.", "jr", "sr.", "sr", "iii", "iv", "phd", "ph.d."}

// splitAuthors parses a raw author field into cleaned display names in
// byline order. Empty fragments are dropped.
func splitAuthors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var authors []string
	for _, part := range authorSeparators.Split(raw, -1) {
		name := cleanAuthorName(part)
		if name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// cleanAuthorName trims whitespace and strips honorific prefixes and
// generational suffixes from a single name.
func cleanAuthorName(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return ""
	}

	for len(tokens) > 0 && isPrefix(tokens[0]) {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && isSuffix(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	return strings.Join(tokens, " ")
}

func isPrefix(token string) bool {
	t := strings.ToLower(token)
	for _, p := range honorificPrefixes {
		if t == p {
			return true
		}
	}
	return false
}

func isSuffix(token string) bool {
	t := strings.ToLower(token)
	for _, s := range nameSuffixes {
		if t == s {
			return true
		}
	}
	return false
}
