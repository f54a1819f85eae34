package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Hello, world!", []string{"Hello", "world"}},
		{"apostrophe", "I don't know", []string{"I", "don't", "know"}},
		{"hyphen", "a well-known fact", []string{"a", "well-known", "fact"}},
		{"numbers", "paid 1,234.56 in 2024", []string{"paid", "1,234.56", "in", "2024"}},
		{"accents", "café crème", []string{"café", "crème"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokensKeepsPunctuation(t *testing.T) {
	toks := Tokens("Hi, Bob!")
	require.Len(t, toks, 4)
	assert.Equal(t, []string{"Hi", ",", "Bob", "!"}, Texts(toks))
	assert.True(t, toks[1].Punct)
	assert.False(t, toks[2].Punct)
	assert.Equal(t, 4, toks[2].Start)
	assert.Equal(t, 7, toks[2].End)
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"a", "b,", "c."}, Fields("  a\tb,\n c. "))
}
