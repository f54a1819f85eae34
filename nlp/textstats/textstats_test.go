package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/oarkflow/textlab/nlp/stopwords"
)

func TestCompute(t *testing.T) {
	s := Compute("The cat sat. It was happy!", nil)
	assert.Equal(t, 26, s.Length)
	assert.Equal(t, 6, s.Vowels)
	assert.Equal(t, 13, s.Consonants)
	assert.Equal(t, 3, s.Stopwords)
	assert.Equal(t, 6, s.Words)
	assert.Equal(t, 6, s.UniqueWords)
	assert.Equal(t, 2, s.Sentences)
	assert.InDelta(t, 19.0/6.0, s.AvgWordLength, 1e-9)
}

func TestComputeCountsRunesNotBytes(t *testing.T) {
	s := Compute("café", stopwords.For("fr"))
	assert.Equal(t, 4, s.Length)
	assert.Equal(t, 1, s.Vowels)
	assert.Equal(t, 2, s.Consonants)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute("", nil)
	assert.Equal(t, Stats{}, s)
}

func TestSummary(t *testing.T) {
	got := Stats{Length: 10, Vowels: 3, Consonants: 5, Stopwords: 1}.Summary()
	assert.Equal(t, map[string]int{
		"Length of Text":       10,
		"Number of Vowels":     3,
		"Number of Consonants": 5,
		"Number of Stopwords":  1,
	}, got)
}

func TestStatsMsgpackKeys(t *testing.T) {
	raw, err := msgpack.Marshal(Compute("The cat sat.", nil))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, msgpack.Unmarshal(raw, &m))
	assert.Contains(t, m, "length")
	assert.Contains(t, m, "avg_word_length")
	assert.NotContains(t, m, "Length")
}
