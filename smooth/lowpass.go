package smooth

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// rolloffFraction is the width of the cosine roll-off band, as a fraction of
// the cutoff frequency.
const rolloffFraction = 0.1

// Lowpass smooths a spectrum by attenuating high spatial frequencies.
//
// cutoff is the normalized cutoff in (0, 1], where 1 is the Nyquist bin. Bins
// above the cutoff are removed; a cosine roll-off over 10% of the cutoff
// width avoids ringing at the transition. The signal is zero-padded to the
// next power of two for the transform and truncated back afterwards.
func Lowpass(y []float64, cutoff float64) ([]float64, error) {
	if len(y) == 0 {
		return nil, fmt.Errorf("lowpass: empty input")
	}

	if cutoff <= 0 || cutoff > 1 {
		return nil, fmt.Errorf("lowpass: cutoff must be in (0, 1]: %g", cutoff)
	}

	fftSize := nextPowerOf2(len(y))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("lowpass: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range y {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("lowpass: forward transform: %w", err)
	}

	// Attenuate symmetrically so the inverse stays real: bin k and bin
	// fftSize-k share a gain.
	nyquist := fftSize / 2
	cutoffBin := cutoff * float64(nyquist)
	rolloff := rolloffFraction * cutoffBin

	for k := 1; k <= nyquist; k++ {
		gain := binGain(float64(k), cutoffBin, rolloff)
		if gain == 1 {
			continue
		}

		freq[k] = freq[k] * complex(gain, 0)
		if k != nyquist {
			freq[fftSize-k] = freq[fftSize-k] * complex(gain, 0)
		}
	}

	timeDomain := make([]complex128, fftSize)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("lowpass: inverse transform: %w", err)
	}

	out := make([]float64, len(y))
	for i := range out {
		out[i] = real(timeDomain[i])
	}

	return out, nil
}

// binGain is 1 below the roll-off band, 0 above the cutoff, and follows a
// raised cosine in between.
func binGain(k, cutoffBin, rolloff float64) float64 {
	if rolloff <= 0 {
		if k > cutoffBin {
			return 0
		}

		return 1
	}

	lo := cutoffBin - rolloff

	switch {
	case k <= lo:
		return 1
	case k >= cutoffBin:
		return 0
	default:
		t := (k - lo) / rolloff
		return 0.5 * (1 + math.Cos(math.Pi*t))
	}
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
