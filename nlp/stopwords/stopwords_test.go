package stopwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFallsBackToEnglish(t *testing.T) {
	l := For("xx")
	require.NotNil(t, l)
	assert.Equal(t, "en", l.Lang)
	assert.Equal(t, "es", For("ES").Lang)
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "es", "fr", "it", "pt"}, Languages())
}

func TestContains(t *testing.T) {
	l := English()
	assert.True(t, l.Contains("the"))
	assert.True(t, l.Contains("The"))
	assert.True(t, l.Contains("it,"))
	assert.True(t, l.Contains("don't"))
	assert.False(t, l.Contains("fox"))
	assert.Greater(t, l.Len(), 150)
}

func TestExtractKeepsOrderAndCase(t *testing.T) {
	got := English().Extract("The quick fox jumps over the lazy dog.")
	assert.Equal(t, []string{"The", "over", "the"}, got)
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, English().Extract("quick brown fox"))
}

func TestRemove(t *testing.T) {
	got := English().Remove("The quick  fox is over the lazy dog.")
	assert.Equal(t, "quick fox lazy dog.", got)
}

func TestFilterAndCount(t *testing.T) {
	l := English()
	assert.Equal(t, []string{"fox", "dog"}, l.Filter([]string{"the", "fox", "and", "dog"}))
	assert.Equal(t, 3, l.Count("this is the fox"))
}
