package langdetect

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/pemistahl/lingua-go"
)

// Unknown is reported by Language when detection fails.
const Unknown = "err"

var (
	ErrNoLetters  = errors.New("langdetect: no letters in text")
	ErrNoEvidence = errors.New("langdetect: no language evidence")
)

// Candidate is a language with its estimated probability.
type Candidate struct {
	Lang string  `json:"lang" yaml:"lang" msgpack:"lang"`
	Prob float64 `json:"prob" yaml:"prob" msgpack:"prob"`
}

// Result lists candidate languages, most probable first.
type Result struct {
	Candidates []Candidate `json:"candidates" yaml:"candidates" msgpack:"candidates"`
}

// Lang returns the most probable language.
func (r Result) Lang() string {
	if len(r.Candidates) == 0 {
		return Unknown
	}
	return r.Candidates[0].Lang
}

type script struct {
	lang  string
	table *unicode.RangeTable
}

// ordered so that kana wins over Han for Japanese text
var scripts = []script{
	{"ja", unicode.Hiragana},
	{"ja", unicode.Katakana},
	{"ko", unicode.Hangul},
	{"zh-CN", unicode.Han},
	{"ta", unicode.Tamil},
	{"ml", unicode.Malayalam},
	{"hi", unicode.Devanagari},
	{"ru", unicode.Cyrillic},
	{"ar", unicode.Arabic},
	{"el", unicode.Greek},
	{"he", unicode.Hebrew},
	{"th", unicode.Thai},
}

// Detect guesses the language of text. Non-Latin scripts are decided by
// their dominant script; Latin text by character n-gram models.
func Detect(text string) (Result, error) {
	counts := make(map[string]int)
	latin, letters := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Latin, r) {
			latin++
			continue
		}
		for _, s := range scripts {
			if unicode.Is(s.table, r) {
				counts[s.lang]++
				break
			}
		}
	}
	if letters == 0 {
		return Result{}, ErrNoLetters
	}
	if counts["ja"] > 0 {
		counts["ja"] += counts["zh-CN"]
		delete(counts, "zh-CN")
	}
	if len(counts) > 0 {
		best, bestN := "", 0
		for lang, n := range counts {
			if n > bestN || n == bestN && lang < best {
				best, bestN = lang, n
			}
		}
		if bestN*2 >= letters {
			return Result{Candidates: []Candidate{{Lang: best, Prob: float64(bestN) / float64(letters)}}}, nil
		}
	}
	return detectLatin(text)
}

// latinLanguages are the Latin-script languages the n-gram detector chooses
// between; they match the embedded stop-word lists.
var latinLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.Italian,
	lingua.German,
	lingua.Portuguese,
}

var detector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(latinLanguages...).
		Build()
})

func detectLatin(text string) (Result, error) {
	d := detector()
	if _, ok := d.DetectLanguageOf(text); !ok {
		return Result{}, ErrNoEvidence
	}
	var out Result
	for _, c := range d.ComputeLanguageConfidenceValues(text) {
		if c.Value() <= 0 {
			continue
		}
		out.Candidates = append(out.Candidates, Candidate{
			Lang: strings.ToLower(c.Language().IsoCode639_1().String()),
			Prob: c.Value(),
		})
	}
	if len(out.Candidates) == 0 {
		return Result{}, ErrNoEvidence
	}
	sort.SliceStable(out.Candidates, func(i, j int) bool {
		return out.Candidates[i].Prob > out.Candidates[j].Prob
	})
	return out, nil
}

// Language returns the detected language code, or Unknown on failure.
func Language(text string) string {
	r, err := Detect(text)
	if err != nil {
		return Unknown
	}
	return r.Lang()
}
