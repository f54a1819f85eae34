package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces  = regexp.MustCompile(`\s+`)
	reSpecial = regexp.MustCompile(`[^\pL\pN\s]`)
)

// ToLower lowercases every token.
func ToLower(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

// RemoveDiacritics decomposes and strips combining marks.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemovePunct strips Unicode punctuation from text and collapses the
// whitespace left behind.
func RemovePunct(text string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, text)
	return collapse(clean)
}

// RemoveSpecialCharacters keeps only letters, digits and whitespace.
func RemoveSpecialCharacters(text string) string {
	return collapse(reSpecial.ReplaceAllString(text, ""))
}

// NormalizeTokens applies lowercase, diacritics removal, and punctuation stripping.
func NormalizeTokens(tokens []string) []string {
	var out []string
	for _, t := range ToLower(tokens) {
		t = RemoveDiacritics(t)
		t = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func collapse(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
