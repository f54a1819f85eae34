package summarization

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/oarkflow/textlab/nlp/normalizer"
	"github.com/oarkflow/textlab/nlp/segmenter"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/tfidf"
	"github.com/oarkflow/textlab/nlp/tokenizer"
)

// ErrTooShort is returned when the text has too few sentences to summarize.
var ErrTooShort = errors.New("summarization: text too short")

const (
	damping       = 0.85
	tolerance     = 1e-4
	maxIterations = 100
)

type Summarizer struct {
	Ratio        float64         `json:"ratio" yaml:"ratio"`
	MinSentences int             `json:"min_sentences" yaml:"min_sentences"`
	Stopwords    *stopwords.List `json:"-" yaml:"-"`
}

// New returns a summarizer keeping half of the sentences.
func New() *Summarizer {
	return &Summarizer{Ratio: 0.5, MinSentences: 2}
}

// Summarize extracts the highest ranked sentences of text with TextRank and
// returns them in their original order, one per line.
func (s *Summarizer) Summarize(text string) (string, error) {
	sentences := segmenter.SentenceSplit(text)
	minSentences := s.MinSentences
	if minSentences < 2 {
		minSentences = 2
	}
	if len(sentences) < minSentences {
		return "", ErrTooShort
	}
	list := s.Stopwords
	if list == nil {
		list = stopwords.English()
	}
	docs := make([][]string, len(sentences))
	for i, sent := range sentences {
		docs[i] = list.Filter(normalizer.NormalizeTokens(tokenizer.Tokenize(sent)))
	}
	scores := Rank(tfidf.NewCorpus(docs))

	ratio := s.Ratio
	if ratio <= 0 || ratio > 1 {
		ratio = 0.5
	}
	keep := int(math.Ceil(ratio * float64(len(sentences))))
	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	idx = idx[:keep]
	sort.Ints(idx)

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = sentences[j]
	}
	return strings.Join(out, "\n"), nil
}

// Rank runs weighted PageRank over the sentence similarity graph of corpus.
func Rank(corpus *tfidf.Corpus) []float64 {
	n := len(corpus.Docs)
	if n == 0 {
		return nil
	}
	weights := make([][]float64, n)
	outSum := make([]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := corpus.Similarity(i, j)
			weights[i][j], weights[j][i] = w, w
			outSum[i] += w
			outSum[j] += w
		}
	}
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)
	for iter := 0; iter < maxIterations; iter++ {
		delta := 0.0
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if weights[j][i] == 0 || outSum[j] == 0 {
					continue
				}
				sum += weights[j][i] / outSum[j] * scores[j]
			}
			next[i] = (1-damping)/float64(n) + damping*sum
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < tolerance {
			break
		}
	}
	return scores
}
