package stopwords

import (
	"bufio"
	"bytes"
	"embed"
	"sort"
	"strings"
	"sync"

	"github.com/oarkflow/textlab/nlp/tokenizer"
)

//go:embed data/*.txt
var data embed.FS

// List is an immutable stop-word set for one language.
type List struct {
	Lang string
	set  map[string]struct{}
}

var (
	loadOnce sync.Once
	lists    map[string]*List
)

func load() {
	lists = make(map[string]*List)
	entries, err := data.ReadDir("data")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		lang := strings.TrimSuffix(e.Name(), ".txt")
		raw, err := data.ReadFile("data/" + e.Name())
		if err != nil {
			panic(err)
		}
		l := &List{Lang: lang, set: make(map[string]struct{})}
		scan := bufio.NewScanner(bytes.NewReader(raw))
		for scan.Scan() {
			w := strings.TrimSpace(scan.Text())
			if w != "" {
				l.set[strings.ToLower(w)] = struct{}{}
			}
		}
		lists[lang] = l
	}
}

// For returns the list for lang, falling back to English.
func For(lang string) *List {
	loadOnce.Do(load)
	if l, ok := lists[strings.ToLower(lang)]; ok {
		return l
	}
	return lists["en"]
}

// English is shorthand for For("en").
func English() *List {
	return For("en")
}

// Languages returns the codes of every embedded list, sorted.
func Languages() []string {
	loadOnce.Do(load)
	out := make([]string, 0, len(lists))
	for lang := range lists {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of words in the list.
func (l *List) Len() int {
	return len(l.set)
}

// Contains reports whether word is a stop word, ignoring case and
// surrounding punctuation.
func (l *List) Contains(word string) bool {
	_, ok := l.set[clean(word)]
	return ok
}

// Filter removes any token present in the stop-word set.
func (l *List) Filter(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if !l.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Extract returns the stop words of text in order of appearance.
func (l *List) Extract(text string) []string {
	out := []string{}
	for _, f := range tokenizer.Fields(text) {
		if l.Contains(f) {
			out = append(out, f)
		}
	}
	return out
}

// Remove drops stop words from text and re-joins the rest with single spaces.
func (l *List) Remove(text string) string {
	var kept []string
	for _, f := range tokenizer.Fields(text) {
		if !l.Contains(f) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Count returns how many whitespace fields of text are stop words.
func (l *List) Count(text string) int {
	n := 0
	for _, f := range tokenizer.Fields(text) {
		if l.Contains(f) {
			n++
		}
	}
	return n
}

func clean(word string) string {
	w := strings.ToLower(word)
	return strings.TrimFunc(w, func(r rune) bool {
		return strings.ContainsRune(`.,;:!?"()[]{}«»“”‘`, r)
	})
}
