package engine

import "gonum.org/v1/gonum/mat"

// similarityMatrix computes the dense all-pairs cosine similarity matrix
// for an L2-normalized feature matrix. With unit-length rows the cosine
// of rows i and j is just their dot product, so the whole matrix is the
// product of X with its own transpose: symmetric, values in [0,1], and
// ones on the diagonal for every row with at least one feature.
func similarityMatrix(x *mat.Dense) *mat.Dense {
	n, _ := x.Dims()
	s := mat.NewDense(n, n, nil)
	s.Mul(x, x.T())
	return s
}
