package smooth

// MovingAverage applies a centered box smooth of the given window size.
//
// Even window sizes are raised to the next odd value. Near the edges the
// window shrinks to the available samples. Window sizes below 3 return a
// plain copy.
func MovingAverage(y []float64, window int) []float64 {
	if len(y) == 0 {
		return nil
	}

	out := make([]float64, len(y))

	if window < 3 {
		copy(out, y)
		return out
	}

	if window%2 == 0 {
		window++
	}

	half := window / 2

	for i := range y {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half
		if hi > len(y)-1 {
			hi = len(y) - 1
		}

		var sum float64
		for j := lo; j <= hi; j++ {
			sum += y[j]
		}

		out[i] = sum / float64(hi-lo+1)
	}

	return out
}

// Quadratic/cubic Savitzky-Golay convolution coefficients for common odd
// window sizes, with their normalization factors.
var sgCoefficients = map[int]struct {
	weights []float64
	norm    float64
}{
	5:  {weights: []float64{-3, 12, 17, 12, -3}, norm: 35},
	7:  {weights: []float64{-2, 3, 6, 7, 6, 3, -2}, norm: 21},
	9:  {weights: []float64{-21, 14, 39, 54, 59, 54, 39, 14, -21}, norm: 231},
	11: {weights: []float64{-36, 9, 44, 69, 84, 89, 84, 69, 44, 9, -36}, norm: 429},
}

// SavitzkyGolay applies quadratic/cubic Savitzky-Golay smoothing.
//
// Supported window sizes are 5, 7, 9, and 11; other sizes are rounded to the
// nearest supported one. Edges are handled by mirroring the signal. Inputs
// shorter than the window return a plain copy.
func SavitzkyGolay(y []float64, window int) []float64 {
	if len(y) == 0 {
		return nil
	}

	window = nearestSGWindow(window)

	out := make([]float64, len(y))

	if len(y) < window {
		copy(out, y)
		return out
	}

	c := sgCoefficients[window]
	half := window / 2

	for i := range y {
		var sum float64
		for j, w := range c.weights {
			sum += w * mirrored(y, i+j-half)
		}

		out[i] = sum / c.norm
	}

	return out
}

func nearestSGWindow(window int) int {
	switch {
	case window <= 5:
		return 5
	case window <= 7:
		return 7
	case window <= 9:
		return 9
	default:
		return 11
	}
}

// mirrored indexes y with mirror padding at both ends.
func mirrored(y []float64, i int) float64 {
	if i < 0 {
		i = -i
	}

	if i > len(y)-1 {
		i = 2*(len(y)-1) - i
	}

	return y[i]
}
