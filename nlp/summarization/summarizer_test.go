package summarization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/textlab/nlp/tfidf"
)

const article = "Go is an open source programming language. " +
	"The language makes it easy to build simple, reliable software. " +
	"Gophers love the language for its concurrency. " +
	"My cat prefers sleeping in the sun. " +
	"Concurrency in the Go language uses goroutines and channels. " +
	"Many companies build reliable software with the Go language."

func TestSummarizeKeepsHalfInOrder(t *testing.T) {
	out, err := New().Summarize(article)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.NotContains(t, out, "My cat prefers sleeping")

	// sentences keep their original relative order
	last := -1
	for _, l := range lines {
		pos := strings.Index(article, l)
		require.GreaterOrEqual(t, pos, 0)
		assert.Greater(t, pos, last)
		last = pos
	}
}

func TestSummarizeTooShort(t *testing.T) {
	_, err := New().Summarize("Only one sentence here.")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = New().Summarize("")
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestSummarizeRatio(t *testing.T) {
	s := &Summarizer{Ratio: 0.2, MinSentences: 2}
	out, err := s.Summarize(article)
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestRankUniformWithoutEdges(t *testing.T) {
	scores := Rank(tfidf.NewCorpus([][]string{{"a"}, {"b"}, {"c"}}))
	require.Len(t, scores, 3)
	assert.InDelta(t, scores[0], scores[1], 1e-12)
	assert.InDelta(t, scores[1], scores[2], 1e-12)
}
