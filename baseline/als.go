package baseline

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/linalg"
)

const (
	// maxALSIterations hard-caps the reweighting loop regardless of the
	// requested iteration count.
	maxALSIterations = 20

	// convergenceTol stops the reweighting loop once the baseline no
	// longer moves.
	convergenceTol = 1e-6

	// autoFastThreshold is the point count above which Auto switches to
	// the fast approximation.
	autoFastThreshold = 2000
)

// Result holds an estimated baseline and the baseline-corrected intensities.
// Both slices have the same length and order as the input.
type Result struct {
	Baseline  []float64
	Corrected []float64
}

// ALSParams configures the asymmetric least-squares estimators.
type ALSParams struct {
	// Lambda is the smoothness penalty. Larger values produce stiffer
	// baselines.
	Lambda float64

	// Asymmetry is the weight assigned to points above the current
	// baseline estimate, in (0, 1). Points below receive 1-Asymmetry.
	Asymmetry float64

	// MaxIterations bounds the reweighting loop (capped at 20).
	MaxIterations int
}

// DefaultALSParams returns the standard starting parameters.
func DefaultALSParams() ALSParams {
	return ALSParams{
		Lambda:        1e5,
		Asymmetry:     0.01,
		MaxIterations: 10,
	}
}

func (p ALSParams) sanitized() ALSParams {
	def := DefaultALSParams()

	if p.Lambda <= 0 {
		p.Lambda = def.Lambda
	}

	if p.Asymmetry <= 0 || p.Asymmetry >= 1 {
		p.Asymmetry = def.Asymmetry
	}

	if p.MaxIterations <= 0 {
		p.MaxIterations = def.MaxIterations
	}

	if p.MaxIterations > maxALSIterations {
		p.MaxIterations = maxALSIterations
	}

	return p
}

// ALS estimates a baseline by asymmetric reweighted penalized least squares.
//
// Weights start at 1 for every point. Each iteration solves
// (W + lambda*DᵀD) z = W*y for the baseline z, then reassigns weight
// Asymmetry to points at or above z and 1-Asymmetry to points below it, so the
// fit tracks the lower envelope of the signal. The loop stops early once the
// maximum baseline change drops below 1e-6.
//
// Inputs with fewer than 3 points yield an empty Result.
func ALS(y []float64, p ALSParams) Result {
	n := len(y)
	if n < 3 {
		return Result{}
	}

	p = p.sanitized()

	d := linalg.DifferenceMatrix(n, 2)

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	rhs := make([]float64, n)
	prev := make([]float64, n)

	var z []float64

	for iter := 0; iter < p.MaxIterations; iter++ {
		a := linalg.Penalized(w, p.Lambda, d)
		vecmath.MulBlock(rhs, w, y)

		z = linalg.SolveCG(a, rhs, 0)
		if z == nil {
			return Result{}
		}

		if iter > 0 && maxAbsDelta(z, prev) < convergenceTol {
			break
		}

		copy(prev, z)

		for i := range w {
			if y[i] >= z[i] {
				w[i] = p.Asymmetry
			} else {
				w[i] = 1 - p.Asymmetry
			}
		}
	}

	return resultFor(y, z)
}

// ALSFast approximates an asymmetric least-squares baseline without solving a
// linear system.
//
// Each iteration replaces the baseline estimate with a weighted blend of a
// 3-point second-difference smooth and the raw signal, using the same
// asymmetric reweighting rule as [ALS]. It is a heuristic approximation, not a
// reduction of the full system, and is intended for spectra where the full
// solve is too costly.
func ALSFast(y []float64, p ALSParams) Result {
	n := len(y)
	if n < 3 {
		return Result{}
	}

	p = p.sanitized()

	z := make([]float64, n)
	copy(z, y)

	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	smoothed := make([]float64, n)
	prev := make([]float64, n)

	for iter := 0; iter < p.MaxIterations; iter++ {
		// 3-point second-difference smooth: z + (1/4) * D2 z.
		smoothed[0] = z[0]
		smoothed[n-1] = z[n-1]
		for i := 1; i < n-1; i++ {
			smoothed[i] = 0.25*z[i-1] + 0.5*z[i] + 0.25*z[i+1]
		}

		copy(prev, z)

		for i := range z {
			z[i] = w[i]*y[i] + (1-w[i])*smoothed[i]
		}

		for i := range w {
			if y[i] >= z[i] {
				w[i] = p.Asymmetry
			} else {
				w[i] = 1 - p.Asymmetry
			}
		}

		if maxAbsDelta(z, prev) < convergenceTol {
			break
		}
	}

	return resultFor(y, z)
}

// Auto selects [ALSFast] for spectra longer than 2000 points and [ALS]
// otherwise.
func Auto(y []float64, p ALSParams) Result {
	if len(y) > autoFastThreshold {
		return ALSFast(y, p)
	}

	return ALS(y, p)
}

// resultFor clamps the corrected trace at zero: corrected[i] = max(0, y-z).
func resultFor(y, z []float64) Result {
	if len(z) != len(y) {
		return Result{}
	}

	corrected := make([]float64, len(y))
	for i := range corrected {
		corrected[i] = math.Max(0, y[i]-z[i])
	}

	return Result{Baseline: z, Corrected: corrected}
}

func maxAbsDelta(a, b []float64) float64 {
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}
