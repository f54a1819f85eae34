package sentiment

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/oarkflow/textlab/nlp/segmenter"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/tokenizer"
)

//go:embed data/lexicon.tsv
var lexiconTSV []byte

// negated sentiment words have their polarity multiplied by this factor
const negationFactor = -0.5

type entry struct {
	polarity     float64
	subjectivity float64
	intensity    float64
}

func (e entry) modifier() bool {
	return e.polarity == 0 && e.subjectivity == 0 && e.intensity != 1
}

// Assessment is the contribution of one sentiment word and its modifiers.
type Assessment struct {
	Words        []string `json:"words" yaml:"words" msgpack:"words"`
	Polarity     float64  `json:"polarity" yaml:"polarity" msgpack:"polarity"`
	Subjectivity float64  `json:"subjectivity" yaml:"subjectivity" msgpack:"subjectivity"`
}

// Sentiment is the averaged score of a text. Polarity is in [-1, 1],
// subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64      `json:"polarity" yaml:"polarity" msgpack:"polarity"`
	Subjectivity float64      `json:"subjectivity" yaml:"subjectivity" msgpack:"subjectivity"`
	Assessments  []Assessment `json:"assessments" yaml:"assessments" msgpack:"assessments"`
}

// Analyzer scores text against a polarity/subjectivity lexicon.
type Analyzer struct {
	lexicon map[string]entry
	stop    *stopwords.List
}

// Load reads a tab separated lexicon: word, polarity, subjectivity and
// intensity. Lines starting with # are ignored.
func Load(r io.Reader) (*Analyzer, error) {
	a := &Analyzer{lexicon: make(map[string]entry), stop: stopwords.English()}
	scan := bufio.NewScanner(r)
	line := 0
	for scan.Scan() {
		line++
		text := strings.TrimSpace(scan.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, "\t")
		if len(parts) != 4 {
			return nil, fmt.Errorf("lexicon line %d: want 4 fields, got %d", line, len(parts))
		}
		var e entry
		var err error
		if e.polarity, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", line, err)
		}
		if e.subjectivity, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", line, err)
		}
		if e.intensity, err = strconv.ParseFloat(parts[3], 64); err != nil {
			return nil, fmt.Errorf("lexicon line %d: %w", line, err)
		}
		a.lexicon[strings.ToLower(parts[0])] = e
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

var (
	defaultOnce     sync.Once
	defaultAnalyzer *Analyzer
)

// Default returns the analyzer backed by the embedded English lexicon.
func Default() *Analyzer {
	defaultOnce.Do(func() {
		a, err := Load(bytes.NewReader(lexiconTSV))
		if err != nil {
			panic(err)
		}
		defaultAnalyzer = a
	})
	return defaultAnalyzer
}

// Analyze scores text with the default analyzer.
func Analyze(text string) Sentiment {
	return Default().Analyze(text)
}

// Analyze scores each sentence of text and averages the assessments.
// Intensifiers scale the next sentiment word; a negation flips and halves it.
func (a *Analyzer) Analyze(text string) Sentiment {
	out := Sentiment{Assessments: []Assessment{}}
	for _, sent := range segmenter.SentenceSplit(text) {
		out.Assessments = append(out.Assessments, a.assess(sent)...)
	}
	if len(out.Assessments) == 0 {
		return out
	}
	for _, as := range out.Assessments {
		out.Polarity += as.Polarity
		out.Subjectivity += as.Subjectivity
	}
	n := float64(len(out.Assessments))
	out.Polarity = clamp(out.Polarity/n, -1, 1)
	out.Subjectivity = clamp(out.Subjectivity/n, 0, 1)
	return out
}

func (a *Analyzer) assess(sentence string) []Assessment {
	var (
		out       []Assessment
		intensity = 1.0
		negated   bool
		words     []string
	)
	for _, tok := range tokenizer.Tokenize(sentence) {
		w := strings.ToLower(strings.ReplaceAll(tok, "’", "'"))
		if isNegation(w) {
			negated = true
			words = append(words, w)
			continue
		}
		e, ok := a.lexicon[w]
		if !ok {
			if !a.stop.Contains(w) {
				intensity, negated, words = 1, false, words[:0]
			}
			continue
		}
		if e.modifier() {
			intensity *= e.intensity
			words = append(words, w)
			continue
		}
		p, s := e.polarity*intensity, e.subjectivity*intensity
		if negated {
			p *= negationFactor
		}
		out = append(out, Assessment{
			Words:        append(append([]string(nil), words...), w),
			Polarity:     clamp(p, -1, 1),
			Subjectivity: clamp(s, 0, 1),
		})
		intensity, negated, words = 1, false, words[:0]
	}
	return out
}

func isNegation(w string) bool {
	switch w {
	case "not", "never", "no", "nothing", "neither", "nor", "cannot", "without", "dont", "isnt", "cant", "wont":
		return true
	}
	return strings.HasSuffix(w, "n't")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
