package pos

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reVBG = regexp.MustCompile(`..ing$`)
	reVBD = regexp.MustCompile(`..ed$`)
	reRB  = regexp.MustCompile(`..ly$`)
	reJJS = regexp.MustCompile(`..iest$`)
	reJJR = regexp.MustCompile(`..ier$`)
	reJJ  = regexp.MustCompile(`..(ous|ful|ive|able|ible|less|ical|ish)$`)
	reNNS = regexp.MustCompile(`..[^su']s$`)
	reCD  = regexp.MustCompile(`^\pN+([.,]\pN+)*$`)
)

var closed = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT", "these": "DT", "those": "DT",
	"every": "DT", "each": "DT", "some": "DT", "any": "DT", "no": "DT", "all": "DT",
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN", "with": "IN", "from": "IN",
	"of": "IN", "about": "IN", "into": "IN", "over": "IN", "under": "IN", "after": "IN",
	"before": "IN", "between": "IN", "through": "IN", "during": "IN", "without": "IN",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP", "they": "PRP",
	"me": "PRP", "him": "PRP", "her": "PRP", "us": "PRP", "them": "PRP",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC",
	"can": "MD", "could": "MD", "will": "MD", "would": "MD", "shall": "MD", "should": "MD",
	"may": "MD", "might": "MD", "must": "MD",
	"to": "TO",
	"is": "VBZ", "are": "VBP", "am": "VBP", "was": "VBD", "were": "VBD", "be": "VB", "been": "VBN",
	"being": "VBG", "has": "VBZ", "have": "VBP", "had": "VBD", "does": "VBZ", "do": "VBP", "did": "VBD",
	"not": "RB", "very": "RB", "too": "RB", "also": "RB",
	"better": "JJR", "worse": "JJR", "best": "JJS", "worst": "JJS",
}

// irregular past forms
var pastForms = map[string]struct{}{
	"went": {}, "saw": {}, "took": {}, "gave": {}, "got": {}, "came": {}, "knew": {}, "thought": {},
	"told": {}, "found": {}, "felt": {}, "left": {}, "brought": {}, "bought": {}, "kept": {},
	"began": {}, "wrote": {}, "spoke": {}, "ate": {}, "ran": {}, "made": {}, "said": {}, "sat": {},
	"stood": {}, "won": {}, "lost": {}, "paid": {}, "met": {}, "sent": {}, "built": {}, "held": {},
}

// Tag assigns a coarse Penn-style POS tag to each token.
func Tag(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		t := strings.ToLower(tok)
		prev := ""
		if i > 0 {
			prev = out[i-1]
		}
		out[i] = tagOne(t, prev)
	}
	return out
}

func tagOne(t, prev string) string {
	if t == "" {
		return "X"
	}
	if isPunct(t) {
		return "PUNCT"
	}
	if tag, ok := closed[t]; ok {
		return tag
	}
	if _, ok := pastForms[t]; ok {
		return "VBD"
	}
	switch {
	case reCD.MatchString(t):
		return "CD"
	case reVBG.MatchString(t):
		return "VBG"
	case reVBD.MatchString(t):
		return "VBD"
	case reRB.MatchString(t):
		return "RB"
	case reJJS.MatchString(t):
		return "JJS"
	case reJJR.MatchString(t):
		return "JJR"
	case reJJ.MatchString(t):
		return "JJ"
	case reNNS.MatchString(t):
		if prev == "PRP" || prev == "NN" {
			return "VBZ"
		}
		return "NNS"
	default:
		if prev == "TO" || prev == "MD" {
			return "VB"
		}
		return "NN"
	}
}

func isPunct(t string) bool {
	for _, r := range t {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// IsVerb reports whether tag is a verb tag.
func IsVerb(tag string) bool {
	return strings.HasPrefix(tag, "VB")
}
