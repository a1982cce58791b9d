package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// DifferenceMatrix returns the finite-difference operator of the given order
// as a dense matrix of shape (n-order, n).
//
// Row i holds the signed binomial coefficients of the order-th forward
// difference starting at column i, so that (D*z)[i] approximates the order-th
// discrete derivative of z at i. Order 1 rows are [-1, 1], order 2 rows are
// [1, -2, 1].
//
// Returns nil when order < 1 or n <= order.
func DifferenceMatrix(n, order int) *mat.Dense {
	if order < 1 || n <= order {
		return nil
	}

	// Signed binomial coefficients (-1)^(order-j) * C(order, j).
	coeffs := make([]float64, order+1)
	coeffs[0] = 1
	for j := 1; j <= order; j++ {
		coeffs[j] = coeffs[j-1] * float64(order-j+1) / float64(j)
	}
	for j := range coeffs {
		if (order-j)%2 == 1 {
			coeffs[j] = -coeffs[j]
		}
	}

	d := mat.NewDense(n-order, n, nil)
	for i := 0; i < n-order; i++ {
		for j, c := range coeffs {
			d.Set(i, i+j, c)
		}
	}

	return d
}

// WeightDiagonal returns the diagonal matrix diag(w).
func WeightDiagonal(w []float64) *mat.DiagDense {
	if len(w) == 0 {
		return nil
	}

	data := make([]float64, len(w))
	copy(data, w)

	return mat.NewDiagDense(len(w), data)
}

// Penalized assembles the penalized least-squares system matrix
// W + lambda*Dᵀ*D for the weight vector w and difference operator d.
//
// d must have exactly len(w) columns. Returns nil on shape mismatch.
func Penalized(w []float64, lambda float64, d *mat.Dense) *mat.Dense {
	n := len(w)
	if n == 0 || d == nil {
		return nil
	}

	if _, cols := d.Dims(); cols != n {
		return nil
	}

	var dtd mat.Dense
	dtd.Mul(d.T(), d)
	dtd.Scale(lambda, &dtd)

	var out mat.Dense
	out.Add(WeightDiagonal(w), &dtd)

	return &out
}

// MulVec returns a*v as a plain slice. Returns nil on shape mismatch.
func MulVec(a mat.Matrix, v []float64) []float64 {
	if a == nil {
		return nil
	}

	r, c := a.Dims()
	if c != len(v) || len(v) == 0 {
		return nil
	}

	var out mat.VecDense
	out.MulVec(a, mat.NewVecDense(len(v), v))

	result := make([]float64, r)
	for i := range result {
		result[i] = out.AtVec(i)
	}

	return result
}
