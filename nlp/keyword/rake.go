package keyword

import (
	"regexp"
	"sort"
	"strings"

	"github.com/oarkflow/textlab/nlp/stopwords"
)

var (
	reSep  = regexp.MustCompile(`[,\.;:\?\!()\[\]"“”]+|\s[-–—]\s`)
	reWord = regexp.MustCompile(`[\pL\pN']+`)
)

// Phrase is a scored candidate key phrase.
type Phrase struct {
	Text  string  `json:"text" yaml:"text" msgpack:"text"`
	Score float64 `json:"score" yaml:"score" msgpack:"score"`
}

// Extract scores candidate phrases with RAKE and returns at most limit of
// them, best first. A limit <= 0 returns all. A nil list means English.
func Extract(text string, list *stopwords.List, limit int) []Phrase {
	if list == nil {
		list = stopwords.English()
	}
	var candidates [][]string
	for _, ph := range reSep.Split(text, -1) {
		var cand []string
		for _, w := range reWord.FindAllString(strings.ToLower(ph), -1) {
			if list.Contains(w) || isNumber(w) {
				if len(cand) > 0 {
					candidates = append(candidates, cand)
					cand = nil
				}
				continue
			}
			cand = append(cand, w)
		}
		if len(cand) > 0 {
			candidates = append(candidates, cand)
		}
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, cand := range candidates {
		for _, w := range cand {
			freq[w]++
			degree[w] += len(cand) - 1
		}
	}
	wordScore := make(map[string]float64, len(freq))
	for w, f := range freq {
		wordScore[w] = float64(f+degree[w]) / float64(f)
	}

	seen := make(map[string]bool)
	var out []Phrase
	for _, cand := range candidates {
		key := strings.Join(cand, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		score := 0.0
		for _, w := range cand {
			score += wordScore[w]
		}
		out = append(out, Phrase{Text: key, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func isNumber(w string) bool {
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
