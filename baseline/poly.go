package baseline

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// anchorWindows is the approximate number of equal windows used to pick
// baseline anchor points.
const anchorWindows = 50

// Polynomial estimates a baseline from windowed minimum anchors.
//
// The spectrum is partitioned into roughly 50 equal windows and the
// minimum-intensity point of each window becomes a baseline anchor. With
// degree 1 a straight line is least-squares fitted through the anchors; with
// any higher degree the anchors are piecewise-linearly interpolated instead.
// The degree changes only the anchor interpolation strategy, not the actual
// polynomial order.
//
// Inputs with fewer than 3 points or mismatched lengths yield an empty Result.
func Polynomial(x, y []float64, degree int) Result {
	n := len(y)
	if n < 3 || len(x) != n {
		return Result{}
	}

	if degree < 1 {
		degree = 1
	}

	windows := anchorWindows
	if windows > n/2 {
		windows = n / 2
	}
	if windows < 2 {
		windows = 2
	}

	anchorX := make([]float64, 0, windows)
	anchorY := make([]float64, 0, windows)

	for wi := range windows {
		lo := wi * n / windows
		hi := (wi + 1) * n / windows
		if hi <= lo {
			continue
		}

		minIdx := lo
		for i := lo + 1; i < hi; i++ {
			if y[i] < y[minIdx] {
				minIdx = i
			}
		}

		anchorX = append(anchorX, x[minIdx])
		anchorY = append(anchorY, y[minIdx])
	}

	if len(anchorX) < 2 {
		return Result{}
	}

	z := make([]float64, n)

	if degree == 1 {
		alpha, beta := stat.LinearRegression(anchorX, anchorY, nil, false)
		for i := range z {
			z[i] = alpha + beta*x[i]
		}

		return resultFor(y, z)
	}

	// Anchor interpolation needs strictly increasing x; sort and drop
	// duplicate positions (descending axes arrive reversed).
	sort.Sort(anchorsByX{anchorX, anchorY})

	keptX := anchorX[:1]
	keptY := anchorY[:1]
	for i := 1; i < len(anchorX); i++ {
		if anchorX[i] > keptX[len(keptX)-1] {
			keptX = append(keptX, anchorX[i])
			keptY = append(keptY, anchorY[i])
		}
	}

	if len(keptX) < 2 {
		for i := range z {
			z[i] = keptY[0]
		}

		return resultFor(y, z)
	}

	for i := range z {
		z[i] = interpolateAt(keptX, keptY, x[i])
	}

	return resultFor(y, z)
}

// Linear estimates the baseline as the single line through the first and last
// sample.
func Linear(x, y []float64) Result {
	n := len(y)
	if n < 3 || len(x) != n {
		return Result{}
	}

	z := make([]float64, n)

	dx := x[n-1] - x[0]
	if dx == 0 {
		for i := range z {
			z[i] = y[0]
		}

		return resultFor(y, z)
	}

	slope := (y[n-1] - y[0]) / dx
	for i := range z {
		z[i] = y[0] + slope*(x[i]-x[0])
	}

	return resultFor(y, z)
}

type anchorsByX struct {
	x []float64
	y []float64
}

func (a anchorsByX) Len() int           { return len(a.x) }
func (a anchorsByX) Less(i, j int) bool { return a.x[i] < a.x[j] }
func (a anchorsByX) Swap(i, j int) {
	a.x[i], a.x[j] = a.x[j], a.x[i]
	a.y[i], a.y[j] = a.y[j], a.y[i]
}

// interpolateAt evaluates the piecewise-linear interpolant through (xs, ys)
// at q, clamping outside the anchor range.
func interpolateAt(xs, ys []float64, q float64) float64 {
	if q <= xs[0] {
		return ys[0]
	}

	if q >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}

	j := sort.SearchFloat64s(xs, q)
	x0, x1 := xs[j-1], xs[j]
	t := (q - x0) / (x1 - x0)

	return ys[j-1] + t*(ys[j]-ys[j-1])
}
