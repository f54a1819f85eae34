package lemmatizer

import (
	"bufio"
	"bytes"
	_ "embed"
	"regexp"
	"strings"

	"github.com/oarkflow/textlab/nlp/normalizer"
	"github.com/oarkflow/textlab/nlp/pos"
	"github.com/oarkflow/textlab/nlp/stopwords"
	"github.com/oarkflow/textlab/nlp/tokenizer"
)

//go:embed data/lemma_dict.csv
var dictCSV []byte

// Dict maps irregular forms to their lemma.
var Dict map[string]string

// a short stem that wants a silent e back: "mak" -> "make", "writ" -> "write"
var reSilentE = regexp.MustCompile(`^[^aeiou]*[aeiou][^aeiouwxy]$`)

func init() {
	Dict = make(map[string]string)
	scan := bufio.NewScanner(bytes.NewReader(dictCSV))
	for scan.Scan() {
		parts := strings.Split(scan.Text(), ",")
		if len(parts) == 2 {
			Dict[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
}

// Entry is one analysed token.
type Entry struct {
	Token string `json:"Token" yaml:"token" msgpack:"token"`
	Lemma string `json:"Lemma" yaml:"lemma" msgpack:"lemma"`
	POS   string `json:"POS" yaml:"pos" msgpack:"pos"`
}

// Lemma returns the base form of token given its POS tag.
func Lemma(token, tag string) string {
	w := strings.ToLower(token)
	if l, ok := Dict[w]; ok {
		return l
	}
	if len(w) < 4 || strings.ContainsRune(w, '\'') {
		return w
	}
	switch {
	case tag == "NNS" || tag == "VBZ":
		return singular(w)
	case tag == "VBG":
		return verbStem(w, "ing")
	case tag == "VBD" || tag == "VBN":
		if strings.HasSuffix(w, "ied") {
			return w[:len(w)-3] + "y"
		}
		if strings.HasSuffix(w, "eed") {
			return w[:len(w)-1]
		}
		if strings.HasSuffix(w, "ed") {
			return verbStem(w, "ed")
		}
	case tag == "JJR":
		return adjStem(w, "er")
	case tag == "JJS":
		return adjStem(w, "est")
	}
	return w
}

func singular(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "ches"),
		strings.HasSuffix(w, "shes"), strings.HasSuffix(w, "zes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"), strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s"):
		return w[:len(w)-1]
	}
	return w
}

func verbStem(w, suffix string) string {
	stem := strings.TrimSuffix(w, suffix)
	if len(stem) < 2 {
		return w
	}
	if undoubled, ok := undouble(stem); ok {
		return undoubled
	}
	if strings.HasSuffix(stem, "v") || strings.HasSuffix(stem, "dg") || reSilentE.MatchString(stem) && len(stem) <= 4 {
		return stem + "e"
	}
	if len(stem) == 2 && strings.ContainsRune("aeiou", rune(stem[0])) {
		return stem + "e"
	}
	return stem
}

func adjStem(w, suffix string) string {
	stem := strings.TrimSuffix(w, suffix)
	if strings.HasSuffix(stem, "i") {
		return stem[:len(stem)-1] + "y"
	}
	if undoubled, ok := undouble(stem); ok {
		return undoubled
	}
	if reSilentE.MatchString(stem) && len(stem) <= 4 {
		return stem + "e"
	}
	return stem
}

func undouble(stem string) (string, bool) {
	n := len(stem)
	if n < 3 || stem[n-1] != stem[n-2] {
		return "", false
	}
	if strings.ContainsRune("lsfzaeiou", rune(stem[n-1])) {
		return "", false
	}
	return stem[:n-1], true
}

// Analyze tokenizes text and returns the token, lemma and tag of each token.
func Analyze(text string) []Entry {
	toks := tokenizer.Texts(tokenizer.Tokens(text))
	tags := pos.Tag(toks)
	out := make([]Entry, len(toks))
	for i, t := range toks {
		out[i] = Entry{Token: t, Lemma: Lemma(t, tags[i]), POS: tags[i]}
	}
	return out
}

// Prepare strips stop words, punctuation and special characters from text,
// the clean-up applied before the tokens and lemmas are shown.
func Prepare(text string, list *stopwords.List) string {
	if list == nil {
		list = stopwords.English()
	}
	out := list.Remove(text)
	out = normalizer.RemovePunct(out)
	return normalizer.RemoveSpecialCharacters(out)
}
