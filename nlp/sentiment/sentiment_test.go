package sentiment

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolarity(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		delta    float64
		desc     string
	}{
		{"I love this product!", 0.5, 0.01, "positive"},
		{"This is terrible.", -1.0, 0.01, "strong negative"},
		{"Not bad at all.", 0.35, 0.01, "negation of negative"},
		{"I don't like it.", -0.1, 0.01, "negation of positive"},
		{"This is very good.", 0.91, 0.01, "intensified positive"},
		{"The service was slightly disappointing.", -0.36, 0.01, "diminished negative"},
		{"Good food, terrible service.", -0.15, 0.01, "mixed"},
		{"", 0.0, 0.0, "empty"},
		{"The table has four legs.", 0.0, 0.0, "neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Analyze(tt.text)
			assert.InDelta(t, tt.expected, got.Polarity, tt.delta)
		})
	}
}

func TestSubjectivity(t *testing.T) {
	got := Analyze("The weather is beautiful.")
	assert.InDelta(t, 1.0, got.Subjectivity, 1e-9)

	got = Analyze("This is useful.")
	assert.InDelta(t, 0.0, got.Subjectivity, 1e-9)
}

func TestScoresAreBounded(t *testing.T) {
	got := Analyze("Absolutely extremely incredibly perfect!")
	assert.LessOrEqual(t, got.Polarity, 1.0)
	assert.LessOrEqual(t, got.Subjectivity, 1.0)
	assert.False(t, math.IsNaN(got.Polarity))
}

func TestAssessmentsCarryModifiers(t *testing.T) {
	got := Analyze("It was not very good.")
	require.Len(t, got.Assessments, 1)
	assert.Equal(t, []string{"not", "very", "good"}, got.Assessments[0].Words)
	assert.InDelta(t, -0.455, got.Assessments[0].Polarity, 1e-9)
}

func TestNegationFlips(t *testing.T) {
	pairs := [][2]string{
		{"This is good.", "This is not good."},
		{"I like it.", "I don't like it."},
		{"The food is excellent.", "The food isn't excellent."},
		{"I loved this.", "I never loved this."},
	}
	for _, p := range pairs {
		pos, neg := Analyze(p[0]), Analyze(p[1])
		assert.Greater(t, pos.Polarity, 0.0, p[0])
		assert.Less(t, neg.Polarity, 0.0, p[1])
	}
}

func TestNegationOnlyReachesNextWord(t *testing.T) {
	got := Analyze("I don't know why, but the food was good.")
	require.Len(t, got.Assessments, 1)
	assert.Equal(t, []string{"good"}, got.Assessments[0].Words)
	assert.InDelta(t, Analyze("The food was good.").Polarity, got.Polarity, 1e-9)
	assert.Greater(t, got.Polarity, 0.0)
}

func TestLoad(t *testing.T) {
	a, err := Load(strings.NewReader("# comment\nyay\t0.9\t0.8\t1.0\nwow\t0\t0\t2.0\n"))
	require.NoError(t, err)
	got := a.Analyze("wow yay")
	assert.InDelta(t, 1.0, got.Polarity, 1e-9)
	assert.InDelta(t, 1.0, got.Subjectivity, 1e-9)

	_, err = Load(strings.NewReader("bad\tline\n"))
	assert.Error(t, err)
	_, err = Load(strings.NewReader("bad\tx\t0\t1\n"))
	assert.Error(t, err)
}
