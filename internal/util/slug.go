// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
	// Matches runs of whitespace.
	spaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeSlug converts a palette or theme name to its URL slug.
//
// Normalization rules:
//  1. Decompose accents and drop non-ASCII
//  2. Trim whitespace and lowercase
//  3. Replace spaces, underscores and slashes with dashes
//  4. Remove non-alphanumeric characters (except dashes)
//  5. Collapse multiple dashes and trim them from both ends
//
// Examples:
//
//	"Clay and Sea"    → "clay-and-sea"
//	"Café Crème"      → "cafe-creme"
//	"Neon_Nights!"    → "neon-nights"
//	"--leading--"     → "leading"
func NormalizeSlug(input string) string {
	s := norm.NFKD.String(input)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(strings.TrimSpace(s))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var titleCaser = cases.Title(language.English)

// DisplayName tidies a user-supplied name for display: whitespace runs are
// collapsed and each word is title-cased. "  ocean   depths" → "Ocean Depths".
func DisplayName(input string) string {
	s := spaceRe.ReplaceAllString(strings.TrimSpace(input), " ")
	return titleCaser.String(s)
}
