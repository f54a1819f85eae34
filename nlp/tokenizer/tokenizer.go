package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
)

// reToken matches words or numbers, preserving internal apostrophes and hyphens.
var reToken = regexp.MustCompile(`[\pL\pM]+(?:['’\-][\pL\pM]+)*|\pN+(?:[.,]\pN+)*`)

// Tokenize splits text into words and numbers. Punctuation is dropped.
func Tokenize(text string) []string {
	return reToken.FindAllString(text, -1)
}

// Fields splits text on whitespace.
func Fields(text string) []string {
	return strings.Fields(text)
}

// Token is a token with its byte span in the source text.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Punct bool   `json:"punct,omitempty"`
}

// Tokens returns every word, number and punctuation mark in order.
func Tokens(text string) []Token {
	var out []Token
	words := reToken.FindAllStringIndex(text, -1)
	pos := 0
	emitPunct := func(from, to int) {
		for i, r := range text[from:to] {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				start := from + i
				out = append(out, Token{
					Text:  string(r),
					Start: start,
					End:   start + len(string(r)),
					Punct: true,
				})
			}
		}
	}
	for _, span := range words {
		emitPunct(pos, span[0])
		out = append(out, Token{Text: text[span[0]:span[1]], Start: span[0], End: span[1]})
		pos = span[1]
	}
	emitPunct(pos, len(text))
	return out
}

// Texts returns the text of each token.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
