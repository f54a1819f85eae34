// Package textstats computes the basic lexical statistics shown in the
// Text Analysis view.
package textstats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oarkflow/textlab/nlp/segmenter"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/tokenizer"
)

const vowels = "aeiouAEIOU"

// Stats holds the lexical statistics of a text.
type Stats struct {
	Length        int     `json:"length" yaml:"length" msgpack:"length"`
	Vowels        int     `json:"vowels" yaml:"vowels" msgpack:"vowels"`
	Consonants    int     `json:"consonants" yaml:"consonants" msgpack:"consonants"`
	Stopwords     int     `json:"stopwords" yaml:"stopwords" msgpack:"stopwords"`
	Words         int     `json:"words" yaml:"words" msgpack:"words"`
	UniqueWords   int     `json:"unique_words" yaml:"unique_words" msgpack:"unique_words"`
	Sentences     int     `json:"sentences" yaml:"sentences" msgpack:"sentences"`
	AvgWordLength float64 `json:"avg_word_length" yaml:"avg_word_length" msgpack:"avg_word_length"`
}

// Compute returns the statistics of text. A nil list means English.
func Compute(text string, list *stopwords.List) Stats {
	if list == nil {
		list = stopwords.English()
	}
	s := Stats{Length: utf8.RuneCountInString(text)}
	for _, r := range text {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		if strings.ContainsRune(vowels, r) {
			s.Vowels++
		} else {
			s.Consonants++
		}
	}
	s.Stopwords = list.Count(text)

	words := tokenizer.Tokenize(text)
	s.Words = len(words)
	seen := make(map[string]struct{}, len(words))
	letters := 0
	for _, w := range words {
		seen[strings.ToLower(w)] = struct{}{}
		letters += utf8.RuneCountInString(w)
	}
	s.UniqueWords = len(seen)
	if s.Words > 0 {
		s.AvgWordLength = float64(letters) / float64(s.Words)
	}
	s.Sentences = len(segmenter.SentenceSplit(text))
	return s
}

// Summary returns the four headline figures keyed by their display name.
func (s Stats) Summary() map[string]int {
	return map[string]int{
		"Length of Text":       s.Length,
		"Number of Vowels":     s.Vowels,
		"Number of Consonants": s.Consonants,
		"Number of Stopwords":  s.Stopwords,
	}
}
