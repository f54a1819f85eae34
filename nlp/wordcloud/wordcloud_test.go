package wordcloud

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencies(t *testing.T) {
	words := Frequencies("The cat and the cats. A dog! Dog's bowl, 42 bowls.", nil, 0)
	got := map[string]int{}
	for _, w := range words {
		got[w.Text] = w.Count
	}
	assert.Equal(t, map[string]int{"cat": 2, "dog": 2, "bowl": 2}, got)
	assert.InDelta(t, 1.0, words[0].Weight, 1e-9)
}

func TestFrequenciesCollocations(t *testing.T) {
	text := "New York is big. I love New York. York minster is old."
	words := Frequencies(text, nil, 0)
	got := map[string]int{}
	for _, w := range words {
		got[w.Text] = w.Count
	}
	assert.Equal(t, 2, got["new york"])
	assert.Equal(t, 1, got["york"])
	assert.NotContains(t, got, "new")
}

func TestFrequenciesLimitAndOrder(t *testing.T) {
	words := Frequencies("alpha beta beta gamma gamma gamma", nil, 2)
	require.Len(t, words, 2)
	assert.Equal(t, "gamma", words[0].Text)
	assert.Equal(t, "beta", words[1].Text)
	assert.InDelta(t, 2.0/3.0, words[1].Weight, 1e-9)
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWords)

	_, err = Generate("the and of", nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestRenderPlacesWithoutOverlap(t *testing.T) {
	words := Frequencies(strings.Repeat("golang gopher channel goroutine interface struct ", 3)+
		"compiler runtime scheduler garbage collector", nil, 0)
	opts := DefaultOptions()
	opts.Width, opts.Height = 400, 200
	cloud, err := Render(words, opts)
	require.NoError(t, err)
	require.NotEmpty(t, cloud.Placed)
	assert.Equal(t, 400, cloud.Image.Bounds().Dx())

	for i, a := range cloud.Placed {
		assert.True(t, a.Rect.In(cloud.Image.Bounds()), a.Word.Text)
		for _, b := range cloud.Placed[i+1:] {
			assert.False(t, a.Rect.Overlaps(b.Rect), "%s overlaps %s", a.Word.Text, b.Word.Text)
		}
	}
	assert.GreaterOrEqual(t, cloud.Placed[0].FontSize, cloud.Placed[len(cloud.Placed)-1].FontSize)
}

func TestGeneratePNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 300, 150
	b, err := Generate("Streams of words flow into the cloud, words and more words.", nil, opts)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestRenderDeterministic(t *testing.T) {
	words := Frequencies("one two two three three three", nil, 0)
	a, err := Render(words, DefaultOptions())
	require.NoError(t, err)
	b, err := Render(words, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, len(a.Placed), len(b.Placed))
	for i := range a.Placed {
		assert.Equal(t, a.Placed[i].Rect, b.Placed[i].Rect)
	}
}
