package wordcloud

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/oarkflow/textlab/nlp/ngram"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/tokenizer"
)

// DefaultMaxWords caps the number of words drawn.
const DefaultMaxWords = 200

// Word is a word or two-word collocation with its relative weight.
type Word struct {
	Text   string  `json:"text" yaml:"text" msgpack:"text"`
	Count  int     `json:"count" yaml:"count" msgpack:"count"`
	Weight float64 `json:"weight" yaml:"weight" msgpack:"weight"`
}

// Frequencies counts the words of text for a cloud. Stop words, numbers and
// single letters are dropped, plurals fold into their singular when both
// occur, and bigrams seen at least twice are kept as phrases. Weights are
// relative to the most frequent entry. A nil list means English.
func Frequencies(text string, list *stopwords.List, max int) []Word {
	if list == nil {
		list = stopwords.English()
	}
	if max <= 0 {
		max = DefaultMaxWords
	}
	var seq []string
	for _, tok := range tokenizer.Tokenize(text) {
		w := strings.ToLower(tok)
		w = strings.TrimSuffix(strings.TrimSuffix(w, "'s"), "’s")
		if utf8.RuneCountInString(w) < 2 || isNumber(w) || list.Contains(w) {
			continue
		}
		seq = append(seq, w)
	}
	counts := ngram.Extract(seq, 1)
	for gram, n := range ngram.Extract(seq, 2) {
		if n < 2 {
			continue
		}
		parts := strings.SplitN(gram, " ", 2)
		if parts[0] == parts[1] {
			continue
		}
		counts[gram] = n
		for _, p := range parts {
			counts[p] -= n
			if counts[p] <= 0 {
				delete(counts, p)
			}
		}
	}
	for w, n := range counts {
		if !strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ss") || strings.Contains(w, " ") {
			continue
		}
		if _, ok := counts[w[:len(w)-1]]; ok {
			counts[w[:len(w)-1]] += n
			delete(counts, w)
		}
	}

	out := make([]Word, 0, len(counts))
	for w, n := range counts {
		out = append(out, Word{Text: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Text < out[j].Text
	})
	if len(out) > max {
		out = out[:max]
	}
	if len(out) > 0 {
		top := float64(out[0].Count)
		for i := range out {
			out[i].Weight = float64(out[i].Count) / top
		}
	}
	return out
}

func isNumber(w string) bool {
	for _, r := range w {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
