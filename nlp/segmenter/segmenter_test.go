package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"basic", "One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"trailing", "First one. And no end", []string{"First one.", "And no end"}},
		{"decimal", "Pi is 3.14 roughly. Yes.", []string{"Pi is 3.14 roughly.", "Yes."}},
		{"abbreviation", "Dr. Smith arrived. He sat.", []string{"Dr. Smith arrived.", "He sat."}},
		{"initial", "J. Smith wrote it. Fine.", []string{"J. Smith wrote it.", "Fine."}},
		{"ellipsis", "Wait... what?! Ok.", []string{"Wait...", "what?!", "Ok."}},
		{"quote", `He said "stop." Then left.`, []string{`He said "stop."`, "Then left."}},
		{"number abbreviation", "See No. 5 for details. Done.", []string{"See No. 5 for details.", "Done."}},
		{"answer no", "The answer is no. We left.", []string{"The answer is no.", "We left."}},
		{"empty", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SentenceSplit(tt.in))
		})
	}
}

func TestParagraphSplit(t *testing.T) {
	got := ParagraphSplit("first para\nstill first\n\n  \nsecond\r\n\r\nthird\n")
	assert.Equal(t, []string{"first para\nstill first", "second", "third"}, got)
}
