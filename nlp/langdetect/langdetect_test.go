package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The quick brown fox jumps over the lazy dog and it was fun.", "en"},
		{"El perro come en la casa con los niños y la madre.", "es"},
		{"Le chat est dans la maison avec les enfants et nous.", "fr"},
		{"Il gatto è nella casa con i bambini e noi non siamo qui.", "it"},
		{"Der Hund ist nicht mit dem Kind in der Stadt und wir sind auch da.", "de"},
		{"我喜欢学习中文", "zh-CN"},
		{"私は日本語を勉強しています", "ja"},
		{"வணக்கம் உலகம்", "ta"},
		{"നമസ്കാരം ലോകം", "ml"},
		{"Привет, как дела?", "ru"},
		{"12345 !!!", Unknown},
		{"", Unknown},
		{"!!! ??? ...", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Language(tt.text))
		})
	}
}

func TestDetectErrors(t *testing.T) {
	_, err := Detect("42")
	assert.ErrorIs(t, err, ErrNoLetters)
}

func TestLanguageWithoutStopWords(t *testing.T) {
	for _, text := range []string{
		"Parliament approved new climate legislation yesterday.",
		"Machine learning models improve rapidly.",
		"Great movie, wonderful acting, brilliant soundtrack.",
	} {
		assert.Equal(t, "en", Language(text), text)
	}
}

func TestDetectProbabilities(t *testing.T) {
	r, err := Detect("the cat and the dog")
	require.NoError(t, err)
	require.NotEmpty(t, r.Candidates)
	assert.Equal(t, "en", r.Lang())
	sum := 0.0
	for _, c := range r.Candidates {
		sum += c.Prob
	}
	assert.InDelta(t, 1.0, sum, 0.05)
}

func TestEmptyResult(t *testing.T) {
	assert.Equal(t, Unknown, Result{}.Lang())
}
