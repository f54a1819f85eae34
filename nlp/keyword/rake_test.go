package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	text := "Compatibility of systems of linear constraints over the set of natural numbers. " +
		"Criteria of compatibility of a system of linear Diophantine equations are considered."
	got := Extract(text, nil, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "linear diophantine equations", got[0].Text)
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
	assert.GreaterOrEqual(t, got[1].Score, got[2].Score)
}

func TestExtractDeduplicates(t *testing.T) {
	got := Extract("red apple. red apple. green pear", nil, 0)
	require.Len(t, got, 2)
	texts := []string{got[0].Text, got[1].Text}
	assert.ElementsMatch(t, []string{"red apple", "green pear"}, texts)
}

func TestExtractEmpty(t *testing.T) {
	assert.Empty(t, Extract("the of and", nil, 5))
}
