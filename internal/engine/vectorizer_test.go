package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize("A Naruto: Shippuuden 2015!")
	assert.Equal(t, []string{"naruto", "shippuuden", "2015"}, tokens)
}

func TestAnalyzeStopWordsAndBigrams(t *testing.T) {
	terms := analyze("the dark fantasy")
	assert.Equal(t, []string{"dark", "fantasy", "dark fantasy"}, terms)
}

func TestFitTransformPrunesRareTerms(t *testing.T) {
	// "alpha" appears in 2 of 3 docs and survives; every other term has
	// document frequency 1 and is pruned.
	docs := []string{"alpha beta", "alpha gamma", "delta epsilon"}

	x, vocab, err := fitTransform(docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, vocab)

	rows, cols := x.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	// Normalized single-feature rows are exactly 1; the doc without the
	// term stays zero.
	assert.InDelta(t, 1.0, x.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, x.At(1, 0), 1e-12)
	assert.Equal(t, 0.0, x.At(2, 0))
}

func TestFitTransformPrunesUbiquitousTerms(t *testing.T) {
	// "tv" is in every document (df share 1.0 > 0.8) and must not become
	// a feature.
	docs := []string{"tv alpha beta", "tv alpha gamma", "tv delta epsilon"}

	_, vocab, err := fitTransform(docs)
	require.NoError(t, err)
	assert.NotContains(t, vocab, "tv")
	assert.Contains(t, vocab, "alpha")
}

func TestFitTransformKeepsBigrams(t *testing.T) {
	docs := []string{"dark fantasy action", "dark fantasy drama", "comedy romance school"}

	_, vocab, err := fitTransform(docs)
	require.NoError(t, err)
	assert.Contains(t, vocab, "dark")
	assert.Contains(t, vocab, "fantasy")
	assert.Contains(t, vocab, "dark fantasy")
}

func TestFitTransformDropsStopWords(t *testing.T) {
	docs := []string{"the action show", "the action drama", "comedy romance here"}

	_, vocab, err := fitTransform(docs)
	require.NoError(t, err)
	assert.NotContains(t, vocab, "the")
	assert.Contains(t, vocab, "action")
}

func TestFitTransformRowsAreUnitLength(t *testing.T) {
	docs := []string{
		"action shounen adventure",
		"action shounen comedy",
		"adventure comedy drama",
		"slice life drama",
	}

	x, _, err := fitTransform(docs)
	require.NoError(t, err)

	rows, cols := x.Dims()
	for i := 0; i < rows; i++ {
		var norm float64
		for j := 0; j < cols; j++ {
			v := x.At(i, j)
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9, "row %d", i)
	}
}

func TestFitTransformDegenerateCorpus(t *testing.T) {
	// No term shared by at least two documents: the build must fail
	// loudly, not hand back an empty matrix.
	_, _, err := fitTransform([]string{"alpha beta", "gamma delta"})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)

	_, _, err = fitTransform([]string{"", ""})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}
