package linalg

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// maxCGIterations bounds worst-case solve latency on large spectra.
	maxCGIterations = 50

	// residualTol terminates the iteration once the residual L2 norm is
	// negligible.
	residualTol = 1e-12

	// curvatureTol guards against division by a numerically zero pᵀAp.
	curvatureTol = 1e-300
)

// SolveCG solves a*x = b for a symmetric positive-(semi)definite matrix a
// using the conjugate-gradient method.
//
// The iteration count is capped at min(len(b), maxIter, 50); pass maxIter <= 0
// to use the cap alone. The solve terminates early when the residual L2 norm
// falls below 1e-12 or when the search direction's curvature pᵀAp is
// numerically zero. On non-convergence the best iterate found is returned; an
// approximate solution is acceptable for smoothing fits.
//
// Returns nil when a is nil, b is empty, or the dimensions disagree.
func SolveCG(a mat.Matrix, b []float64, maxIter int) []float64 {
	n := len(b)
	if a == nil || n == 0 {
		return nil
	}

	if r, c := a.Dims(); r != n || c != n {
		return nil
	}

	if maxIter <= 0 || maxIter > maxCGIterations {
		maxIter = maxCGIterations
	}

	if n < maxIter {
		maxIter = n
	}

	x := make([]float64, n)

	// Starting from x = 0 the initial residual and direction are both b.
	res := make([]float64, n)
	copy(res, b)

	p := make([]float64, n)
	copy(p, b)

	// pVec shares backing storage with p so MulVec always sees the
	// current direction.
	pVec := mat.NewVecDense(n, p)
	apVec := mat.NewVecDense(n, nil)
	ap := apVec.RawVector().Data

	rsOld := floats.Dot(res, res)
	if math.Sqrt(rsOld) < residualTol {
		return x
	}

	for range maxIter {
		apVec.MulVec(a, pVec)

		curvature := floats.Dot(p, ap)
		if math.Abs(curvature) < curvatureTol {
			break
		}

		alpha := rsOld / curvature
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(res, -alpha, ap)

		rsNew := floats.Dot(res, res)
		if math.Sqrt(rsNew) < residualTol {
			break
		}

		// p = res + (rsNew/rsOld) * p
		floats.Scale(rsNew/rsOld, p)
		floats.Add(p, res)

		rsOld = rsNew
	}

	return x
}
