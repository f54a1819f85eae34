package ngram

import "strings"

// Extract returns the frequency map of n-grams for a given n.
func Extract(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	if n <= 0 {
		return counts
	}
	for i := 0; i <= len(tokens)-n; i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}
