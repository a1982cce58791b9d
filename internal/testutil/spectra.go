// Package testutil provides deterministic spectrum builders and tolerance
// assertions shared by the analysis packages' tests.
package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}

	return out
}

// Reversed returns a reversed copy of x, for building descending axes.
func Reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}

// GaussianPeak adds a Gaussian peak of the given center, amplitude, and sigma
// to a zero background over the axis x.
func GaussianPeak(x []float64, center, amplitude, sigma float64) []float64 {
	out := make([]float64, len(x))
	AddGaussian(out, x, center, amplitude, sigma)

	return out
}

// AddGaussian adds a Gaussian peak in place to y over the axis x.
func AddGaussian(y, x []float64, center, amplitude, sigma float64) {
	for i := range y {
		d := (x[i] - center) / sigma
		y[i] += amplitude * math.Exp(-0.5*d*d)
	}
}

// SlopedBaseline returns offset + slope*x[i] for each axis point, a linear
// background signal.
func SlopedBaseline(x []float64, offset, slope float64) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = offset + slope*x[i]
	}

	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}
