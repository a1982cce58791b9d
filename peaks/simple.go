package peaks

// DetectSimple finds peaks with a fixed-radius local-window extremum test and
// a coarse two-window prominence estimate.
//
// It trades accuracy for predictable cost and is used as a fallback when the
// full algorithm fails, or directly for responsiveness on very large spectra.
// Width is not estimated and LeftBase/RightBase are -1.
func DetectSimple(x, y []float64, p Params) []Peak {
	n := len(y)
	if n < 3 || len(x) != n {
		return nil
	}

	p = p.sanitized()

	s, _ := orientation(y, p)

	minV, maxV := s[0], s[0]
	for _, v := range s[1:] {
		if v < minV {
			minV = v
		}

		if v > maxV {
			maxV = v
		}
	}

	intensityRange := maxV - minV
	if intensityRange == 0 {
		return nil
	}

	minProminence := p.Prominence * intensityRange

	radius := p.Distance
	if radius < 2 {
		radius = 2
	}

	var accepted []Peak

	for i := 1; i < n-1; i++ {
		if !windowMaximum(s, i, radius) {
			continue
		}

		// Coarse prominence: extremum height over the higher of the two
		// neighboring window minima.
		leftMin := windowMinimum(s, i-2*radius, i)
		rightMin := windowMinimum(s, i+1, i+1+2*radius)

		base := leftMin
		if rightMin > base {
			base = rightMin
		}

		prom := s[i] - base
		if prom < minProminence {
			continue
		}

		accepted = append(accepted, Peak{
			Index:      i,
			X:          x[i],
			Y:          y[i],
			Prominence: prom,
			LeftBase:   -1,
			RightBase:  -1,
		})

		// Skip ahead: nothing within the window can also be a window
		// maximum.
		i += radius
	}

	finalize(accepted, p.BaseID)

	return accepted
}

// DetectSafe runs the full detection algorithm and falls back to the
// simplified one if the full algorithm panics.
func DetectSafe(x, y []float64, p Params) (result []Peak) {
	defer func() {
		if r := recover(); r != nil {
			result = DetectSimple(x, y, p)
		}
	}()

	return Detect(x, y, p)
}

// windowMaximum reports whether s[i] is the strict-or-equal maximum of the
// window [i-radius, i+radius], clamped to the signal bounds, with at least one
// strictly smaller left neighbor.
func windowMaximum(s []float64, i, radius int) bool {
	lo := i - radius
	if lo < 0 {
		lo = 0
	}

	hi := i + radius
	if hi > len(s)-1 {
		hi = len(s) - 1
	}

	for j := lo; j <= hi; j++ {
		if j == i {
			continue
		}

		if s[j] > s[i] {
			return false
		}
	}

	return s[i] > s[i-1]
}

// windowMinimum returns the minimum of s over [lo, hi), clamped to bounds.
func windowMinimum(s []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}

	if hi > len(s) {
		hi = len(s)
	}

	if lo >= hi {
		return s[clampIndex(s, lo)]
	}

	minV := s[lo]
	for j := lo + 1; j < hi; j++ {
		if s[j] < minV {
			minV = s[j]
		}
	}

	return minV
}

func clampIndex(s []float64, i int) int {
	if i < 0 {
		return 0
	}

	if i > len(s)-1 {
		return len(s) - 1
	}

	return i
}
