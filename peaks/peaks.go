package peaks

import (
	"sort"
	"strings"

	"github.com/cwbudde/algo-spectro/convert"
)

// Peak is a detected local extremum.
type Peak struct {
	// ID is assigned at detection time and stays stable across subsequent
	// boundary edits of the same peak. IDs are never reused within a
	// detection run; a new run discards old peaks.
	ID int

	// Index is the sample index of the extremum.
	Index int

	// X and Y are the extremum coordinates in the working spectrum.
	X float64
	Y float64

	// Prominence is the extremum height (or depth, for valleys) relative
	// to the nearest relevant saddle.
	Prominence float64

	// Width is the estimated width at half prominence, in sample points.
	// Zero when the estimate was unavailable.
	Width float64

	// LeftBase and RightBase are the indices of the surrounding opposing
	// extrema used for the prominence estimate, or -1 when unknown.
	LeftBase  int
	RightBase int
}

// Params configures peak detection.
type Params struct {
	// Prominence is the minimum prominence as a fraction of the intensity
	// range. Defaults to 0.02.
	Prominence float64

	// Distance is the minimum index separation between accepted peaks.
	// Defaults to 5.
	Distance int

	// Width is the minimum half-height width in points. Zero disables the
	// width filter.
	Width float64

	// Threshold is an absolute intensity gate: candidates below it (above
	// it, in valley mode) are skipped. Zero disables the gate.
	Threshold float64

	// RelThreshold gates candidates by their height above the signal
	// minimum, as a fraction of the intensity range. Zero disables it.
	RelThreshold float64

	// Valley selects valley orientation explicitly. Valley orientation is
	// also inferred from Mode and Technique; see [TransmittanceDips].
	Valley bool

	// Technique and Mode describe the working spectrum and participate in
	// valley-mode determination.
	Technique string
	Mode      convert.DataMode

	// BaseID is the ID assigned to the most prominent peak; subsequent
	// peaks count up from it. Defaults to 1.
	BaseID int
}

// DefaultParams returns the standard detection parameters.
func DefaultParams() Params {
	return Params{
		Prominence: 0.02,
		Distance:   5,
		BaseID:     1,
	}
}

func (p Params) sanitized() Params {
	def := DefaultParams()

	if p.Prominence <= 0 {
		p.Prominence = def.Prominence
	}

	if p.Distance <= 0 {
		p.Distance = def.Distance
	}

	if p.Width < 0 {
		p.Width = 0
	}

	if p.BaseID <= 0 {
		p.BaseID = def.BaseID
	}

	return p
}

// dipTechniques are the absorption techniques whose transmittance spectra
// show features as dips.
var dipTechniques = map[string]bool{
	"uv-vis":   true,
	"uv":       true,
	"vis":      true,
	"ir":       true,
	"infrared": true,
}

// TransmittanceDips reports whether spectra of the given mode and technique
// show absorption features as local minima.
func TransmittanceDips(mode convert.DataMode, technique string) bool {
	return mode == convert.ModeTransmittance && dipTechniques[strings.ToLower(strings.TrimSpace(technique))]
}

// orientation returns the signal to search for maxima and whether the search
// runs in valley mode. Valley data is negated so both orientations share one
// maximum-finding pass.
func orientation(y []float64, p Params) ([]float64, bool) {
	valley := p.Valley || TransmittanceDips(p.Mode, p.Technique)
	if !valley {
		return y, false
	}

	s := make([]float64, len(y))
	for i, v := range y {
		s[i] = -v
	}

	return s, true
}

// Detect finds prominence- and width-filtered local extrema.
//
// For each interior sample the candidate must be a local maximum of the
// oriented signal and pass the absolute-threshold gate. Prominence is computed
// by scanning outward in both directions for the surrounding opposing
// extremum, stopping early at the first more-extreme same-sign point so the
// estimate reflects the nearest relevant saddle. Candidates are then filtered
// by half-height width and by index distance to already-accepted peaks, and
// the survivors are returned sorted by descending prominence.
//
// Mismatched lengths or fewer than 3 samples yield an empty result.
func Detect(x, y []float64, p Params) []Peak {
	n := len(y)
	if n < 3 || len(x) != n {
		return nil
	}

	p = p.sanitized()

	s, valley := orientation(y, p)

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

	threshold := p.Threshold
	if valley {
		threshold = -threshold
	}

	var accepted []Peak

	for i := 1; i < n-1; i++ {
		if !(s[i] > s[i-1] && s[i] >= s[i+1]) {
			continue
		}

		if p.Threshold != 0 && s[i] < threshold {
			continue
		}

		if p.RelThreshold > 0 && s[i]-minV < p.RelThreshold*intensityRange {
			continue
		}

		prom, leftBase, rightBase := prominenceAt(s, i)
		if prom < minProminence {
			continue
		}

		width := widthAt(s, i, prom, leftBase, rightBase)
		if p.Width > 0 && width < p.Width {
			continue
		}

		tooClose := false
		for _, pk := range accepted {
			if abs(i-pk.Index) < p.Distance {
				tooClose = true
				break
			}
		}

		if tooClose {
			continue
		}

		accepted = append(accepted, Peak{
			Index:      i,
			X:          x[i],
			Y:          y[i],
			Prominence: prom,
			Width:      width,
			LeftBase:   leftBase,
			RightBase:  rightBase,
		})
	}

	finalize(accepted, p.BaseID)

	return accepted
}

// prominenceAt scans outward from extremum index i for the surrounding minima
// of the oriented signal. Each scan stops early when a point higher than the
// extremum is found, so the returned prominence is measured against the
// nearest relevant saddle rather than a global one.
func prominenceAt(s []float64, i int) (prom float64, leftBase, rightBase int) {
	leftMin := s[i]
	leftBase = i

	for j := i - 1; j >= 0; j-- {
		if s[j] > s[i] {
			break
		}

		if s[j] < leftMin {
			leftMin = s[j]
			leftBase = j
		}
	}

	rightMin := s[i]
	rightBase = i

	for j := i + 1; j < len(s); j++ {
		if s[j] > s[i] {
			break
		}

		if s[j] < rightMin {
			rightMin = s[j]
			rightBase = j
		}
	}

	base := leftMin
	if rightMin > base {
		base = rightMin
	}

	return s[i] - base, leftBase, rightBase
}

// widthAt estimates the width at half prominence by walking outward from the
// extremum to the half-level crossing on each side, interpolating the
// fractional crossing position.
func widthAt(s []float64, i int, prom float64, leftBase, rightBase int) float64 {
	half := s[i] - prom/2

	leftPos := float64(leftBase)

	for j := i - 1; j >= leftBase; j-- {
		if s[j] <= half {
			leftPos = float64(j)
			if s[j+1] != s[j] {
				leftPos += (half - s[j]) / (s[j+1] - s[j])
			}

			break
		}
	}

	rightPos := float64(rightBase)

	for j := i + 1; j <= rightBase; j++ {
		if s[j] <= half {
			rightPos = float64(j)
			if s[j-1] != s[j] {
				rightPos -= (half - s[j]) / (s[j-1] - s[j])
			}

			break
		}
	}

	width := rightPos - leftPos
	if width < 0 {
		return 0
	}

	return width
}

// finalize sorts peaks by descending prominence (ties by index) and assigns
// sequential IDs starting at baseID.
func finalize(pks []Peak, baseID int) {
	sort.SliceStable(pks, func(a, b int) bool {
		if pks[a].Prominence != pks[b].Prominence {
			return pks[a].Prominence > pks[b].Prominence
		}

		return pks[a].Index < pks[b].Index
	})

	for i := range pks {
		pks[i].ID = baseID + i
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
