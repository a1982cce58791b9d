package integrate

import (
	"math"

	"github.com/cwbudde/algo-spectro/peaks"
)

// minAutoWindow is the minimum width, in points, of an automatically derived
// integration window.
const minAutoWindow = 5

// Record is the integration result attached to a detected peak.
type Record struct {
	// Area is the trapezoidal area over the boundary window, always
	// non-negative.
	Area float64

	// StartX and EndX are the boundary positions with StartX < EndX,
	// regardless of axis direction.
	StartX float64
	EndX   float64

	// ManuallyAdjusted is latched true once a user-specified boundary
	// overrides the automatic one and stays true for the peak's lifetime.
	ManuallyAdjusted bool
}

// Options configures automatic boundary derivation.
type Options struct {
	// DefaultWidth is the window width in points used for peaks whose
	// detected width is unavailable. Values below 5 are raised to 5.
	DefaultWidth int
}

// Area computes the trapezoidal area of y over the index range
// [start, end]. The absolute value is returned so descending axes yield the
// same area as ascending ones. Out-of-range or collapsed index pairs yield 0.
func Area(x, y []float64, start, end int) float64 {
	n := len(y)
	if n < 2 || len(x) != n {
		return 0
	}

	if start < 0 {
		start = 0
	}

	if end > n-1 {
		end = n - 1
	}

	if start >= end {
		return 0
	}

	var sum float64
	for i := start; i < end; i++ {
		sum += (y[i] + y[i+1]) / 2 * (x[i+1] - x[i])
	}

	return math.Abs(sum)
}

// BoundaryIndices maps an explicit (startX, endX) boundary pair to the sample
// index range it encloses.
//
// The mapping is direction-agnostic: the returned range covers every sample
// whose x lies in [startX, endX] after ordering the pair, whether the axis
// ascends or descends. A pair enclosing no sample maps to the sample nearest
// the interval midpoint; a collapsed range is widened by one index on each
// side where possible.
func BoundaryIndices(x []float64, startX, endX float64) (start, end int) {
	n := len(x)
	if n == 0 {
		return 0, 0
	}

	if startX > endX {
		startX, endX = endX, startX
	}

	start, end = -1, -1

	for i, v := range x {
		if v < startX || v > endX {
			continue
		}

		if start == -1 {
			start = i
		}

		end = i
	}

	if start == -1 {
		mid := (startX + endX) / 2
		start = nearestIndex(x, mid)
		end = start
	}

	return widenCollapsed(start, end, n)
}

// autoIndices derives a symmetric window around the peak index from its
// detected width (doubled, minimum 5 points) or the caller-supplied default.
func autoIndices(pk peaks.Peak, n int, opts Options) (start, end int) {
	width := int(math.Round(pk.Width)) * 2
	if width <= 0 {
		width = opts.DefaultWidth
	}

	if width < minAutoWindow {
		width = minAutoWindow
	}

	half := width / 2

	start = pk.Index - half
	if start < 0 {
		start = 0
	}

	end = pk.Index + half
	if end > n-1 {
		end = n - 1
	}

	return widenCollapsed(start, end, n)
}

// Peak computes the integration record for a single detected peak.
//
// When prev carries manually adjusted boundaries they are preserved and the
// area is recomputed over the given x/y data; otherwise an automatic boundary
// window is derived. Malformed input yields a zero Record.
func Peak(x, y []float64, pk peaks.Peak, prev *Record, opts Options) Record {
	n := len(y)
	if n < 3 || len(x) != n {
		return Record{}
	}

	if prev != nil && prev.ManuallyAdjusted {
		start, end := BoundaryIndices(x, prev.StartX, prev.EndX)

		return Record{
			Area:             Area(x, y, start, end),
			StartX:           prev.StartX,
			EndX:             prev.EndX,
			ManuallyAdjusted: true,
		}
	}

	start, end := autoIndices(pk, n, opts)

	return Record{
		Area:   Area(x, y, start, end),
		StartX: math.Min(x[start], x[end]),
		EndX:   math.Max(x[start], x[end]),
	}
}

// All integrates every detected peak, deriving automatic boundaries for peaks
// without explicit ones and preserving already-set manual boundaries from
// existing. The result is keyed by peak ID.
func All(x, y []float64, pks []peaks.Peak, existing map[int]Record, opts Options) map[int]Record {
	if len(pks) == 0 {
		return nil
	}

	out := make(map[int]Record, len(pks))

	for _, pk := range pks {
		var prev *Record
		if rec, ok := existing[pk.ID]; ok {
			prev = &rec
		}

		out[pk.ID] = Peak(x, y, pk, prev, opts)
	}

	return out
}

// widenCollapsed widens a collapsed index range by one index on each side
// where the signal bounds allow.
func widenCollapsed(start, end, n int) (int, int) {
	if start < end {
		return start, end
	}

	if start > 0 {
		start--
	}

	if end < n-1 {
		end++
	}

	return start, end
}

func nearestIndex(x []float64, v float64) int {
	best := 0
	bestDist := math.Abs(x[0] - v)

	for i := 1; i < len(x); i++ {
		d := math.Abs(x[i] - v)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
