package segmenter

import (
	"regexp"
	"strings"
)

// reBoundary finds a run of terminators followed by closing quotes/brackets.
var reBoundary = regexp.MustCompile(`[.!?。！？]+["'”’)\]]*`)

// reParagraph splits text into paragraphs separated by ≥2 newlines.
var reParagraph = regexp.MustCompile(`\r?\n\s*\r?\n`)

var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {}, "st": {},
	"vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "inc": {}, "ltd": {}, "co": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {}, "u.s": {}, "a.m": {}, "p.m": {},
}

// SentenceSplit splits text into trimmed sentences. A terminator only ends a
// sentence when followed by whitespace or the end of text, and not after a
// known abbreviation. Trailing text without a terminator is kept.
func SentenceSplit(text string) []string {
	var out []string
	start := 0
	for _, m := range reBoundary.FindAllStringIndex(text, -1) {
		end := m[1]
		if end < len(text) && !isSpace(text[end]) {
			continue
		}
		if text[m[0]] == '.' && isAbbreviation(text[start:m[0]], text[end:]) {
			continue
		}
		if s := strings.TrimSpace(text[start:end]); s != "" {
			out = append(out, s)
		}
		start = end
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// ParagraphSplit splits text into non-empty paragraphs.
func ParagraphSplit(text string) []string {
	var out []string
	for _, p := range reParagraph.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isAbbreviation(prefix, rest string) bool {
	i := strings.LastIndexAny(prefix, " \t\n\r(")
	word := strings.ToLower(prefix[i+1:])
	if word == "" {
		return false
	}
	// "No. 5" but not "the answer is no. We left."
	if word == "no" {
		rest = strings.TrimLeft(rest, " \t")
		return rest != "" && rest[0] >= '0' && rest[0] <= '9'
	}
	if _, ok := abbreviations[word]; ok {
		return true
	}
	// single initials such as "J." in "J. Smith"
	return len(word) == 1 && word[0] >= 'a' && word[0] <= 'z'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
