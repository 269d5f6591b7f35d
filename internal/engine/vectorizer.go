package engine

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Vectorizer configuration. The vocabulary is bounded so the dense
// feature matrix stays tractable for the all-pairs similarity step.
const (
	maxFeatures = 5000
	minDocFreq  = 2   // a term must appear in at least this many documents
	maxDocShare = 0.8 // and in at most this share of all documents
)

// ErrEmptyVocabulary is returned when pruning leaves no usable terms at
// all, e.g. a corpus of empty or stop-word-only tag strings. The build
// must not proceed past this.
var ErrEmptyVocabulary = errors.New("empty vocabulary: no usable terms in corpus")

// tokenPattern selects word tokens of two or more characters; single
// characters and punctuation never become features.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

func tokenize(s string) []string {
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}

// analyze produces the candidate terms of one document: stop words are
// dropped first, then unigrams and bigrams are taken over what remains.
func analyze(s string) []string {
	words := tokenize(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}

	terms := make([]string, 0, 2*len(kept))
	terms = append(terms, kept...)
	for i := 0; i+1 < len(kept); i++ {
		terms = append(terms, kept[i]+" "+kept[i+1])
	}
	return terms
}

// fitTransform builds the TF-IDF feature matrix for the whole corpus and
// returns it with the retained vocabulary in column order. Rows are
// L2-normalized so downstream cosine similarity reduces to dot products.
func fitTransform(docs []string) (*mat.Dense, []string, error) {
	n := len(docs)

	counts := make([]map[string]int, n)
	df := make(map[string]int)
	corpusFreq := make(map[string]int)

	for i, doc := range docs {
		c := make(map[string]int)
		for _, t := range analyze(doc) {
			c[t]++
		}
		counts[i] = c
		for t, k := range c {
			df[t]++
			corpusFreq[t] += k
		}
	}

	// Prune rare terms and terms so common they carry no signal.
	maxDF := maxDocShare * float64(n)
	terms := make([]string, 0, len(df))
	for t, d := range df {
		if d < minDocFreq || float64(d) > maxDF {
			continue
		}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	// Cap the vocabulary at the terms with the highest corpus frequency,
	// breaking ties toward lexicographically earlier terms so the result
	// is deterministic.
	if len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
				return corpusFreq[terms[i]] > corpusFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for j, t := range terms {
		index[t] = j
	}

	idf := make([]float64, len(terms))
	for j, t := range terms {
		idf[j] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}

	X := mat.NewDense(n, len(terms), nil)
	for i, c := range counts {
		row := X.RawRowView(i)
		var norm float64
		for t, k := range c {
			j, ok := index[t]
			if !ok {
				continue
			}
			w := float64(k) * idf[j]
			row[j] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j] /= norm
			}
		}
	}

	return X, terms, nil
}
