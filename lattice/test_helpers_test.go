package lattice_test

import "gonum.org/v1/gonum/mat"

// matDense builds an n×n dense matrix from row-major data.
func matDense(n int, data []float64) *mat.Dense {
	return mat.NewDense(n, n, data)
}
