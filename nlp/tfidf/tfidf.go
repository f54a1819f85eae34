package tfidf

import (
	"math"
	"sort"
)

// Corpus is a document-term matrix with TF-IDF weights. Documents are
// sentences for the summarizer.
type Corpus struct {
	Docs       [][]string
	DF         map[string]int
	IDF        map[string]float64
	TFIDFCache []map[string]float64
	norms      []float64
}

func NewCorpus(docs [][]string) *Corpus {
	c := &Corpus{Docs: docs, DF: make(map[string]int)}
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, w := range doc {
			if !seen[w] {
				c.DF[w]++
				seen[w] = true
			}
		}
	}
	N := float64(len(docs))
	c.IDF = make(map[string]float64, len(c.DF))
	for w, df := range c.DF {
		c.IDF[w] = math.Log(N/float64(df)) + 1.0
	}
	c.TFIDFCache = make([]map[string]float64, len(docs))
	c.norms = make([]float64, len(docs))
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, w := range doc {
			tf[w]++
		}
		m := make(map[string]float64, len(tf))
		sq := 0.0
		for w, cnt := range tf {
			v := float64(cnt) / float64(len(doc)) * c.IDF[w]
			m[w] = v
			sq += v * v
		}
		c.TFIDFCache[i] = m
		c.norms[i] = math.Sqrt(sq)
	}
	return c
}

// Similarity returns the cosine similarity of documents i and j.
func (c *Corpus) Similarity(i, j int) float64 {
	if c.norms[i] == 0 || c.norms[j] == 0 {
		return 0
	}
	a, b := c.TFIDFCache[i], c.TFIDFCache[j]
	if len(b) < len(a) {
		a, b = b, a
	}
	num := 0.0
	for w, x := range a {
		num += x * b[w]
	}
	return num / (c.norms[i] * c.norms[j])
}

// Rank returns doc indices sorted by cosine similarity to query.
func (c *Corpus) Rank(query []string) []int {
	qtf := make(map[string]int)
	for _, w := range query {
		qtf[w]++
	}
	qvec := make(map[string]float64)
	qnorm := 0.0
	for w, cnt := range qtf {
		if idf, ok := c.IDF[w]; ok {
			v := float64(cnt) / float64(len(query)) * idf
			qvec[w] = v
			qnorm += v * v
		}
	}
	qnorm = math.Sqrt(qnorm)
	type kv struct {
		idx int
		sim float64
	}
	sims := make([]kv, len(c.TFIDFCache))
	for i, docvec := range c.TFIDFCache {
		sims[i] = kv{idx: i}
		if qnorm == 0 || c.norms[i] == 0 {
			continue
		}
		num := 0.0
		for w, qw := range qvec {
			num += qw * docvec[w]
		}
		sims[i].sim = num / (qnorm * c.norms[i])
	}
	sort.SliceStable(sims, func(i, j int) bool { return sims[i].sim > sims[j].sim })
	idxs := make([]int, len(sims))
	for i, kv := range sims {
		idxs[i] = kv.idx
	}
	return idxs
}

// Weights sums each term's TF-IDF weight across the corpus.
func (c *Corpus) Weights() map[string]float64 {
	out := make(map[string]float64, len(c.DF))
	for _, m := range c.TFIDFCache {
		for w, v := range m {
			out[w] += v
		}
	}
	return out
}
