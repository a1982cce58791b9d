package analysis

import (
	"github.com/cwbudde/algo-spectro/baseline"
	"github.com/cwbudde/algo-spectro/convert"
	"github.com/cwbudde/algo-spectro/integrate"
	"github.com/cwbudde/algo-spectro/peaks"
)

// BaselineMethod selects a baseline estimator.
type BaselineMethod string

// Supported baseline methods.
const (
	BaselineALS        BaselineMethod = "als"
	BaselineALSFast    BaselineMethod = "als-fast"
	BaselineAuto       BaselineMethod = "auto"
	BaselinePolynomial BaselineMethod = "polynomial"
	BaselineLinear     BaselineMethod = "linear"
)

// BaselineParams bundles the parameters of all baseline estimators.
type BaselineParams struct {
	ALS baseline.ALSParams

	// Degree applies to the polynomial method only.
	Degree int
}

// Spectrum is the working copy of a spectrum under analysis.
type Spectrum struct {
	ID        int
	X         []float64
	Y         []float64
	Technique string
	XUnit     string
	Mode      convert.DataMode
	Metadata  map[string]any

	// nextPeakID makes detection-run IDs monotonic for this spectrum so
	// an ID is never reused after its run is discarded.
	nextPeakID int
}

// NewSpectrum builds a working spectrum from raw ingested data.
//
// The x and y slices are copied. An empty technique is inferred from the
// x range and the intensity mode is detected from values, metadata, and
// technique.
func NewSpectrum(id int, x, y []float64, technique, xUnit string, metadata map[string]any) *Spectrum {
	cx := make([]float64, len(x))
	copy(cx, x)

	cy := make([]float64, len(y))
	copy(cy, y)

	if technique == "" {
		technique = convert.InferTechnique(cx)
	}

	return &Spectrum{
		ID:        id,
		X:         cx,
		Y:         cy,
		Technique: technique,
		XUnit:     xUnit,
		Mode:      convert.DetectMode(cy, technique, metadata),
		Metadata:  metadata,
	}
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.Y) }

// CorrectBaseline estimates a baseline for the current working intensities.
//
// The result is returned without touching the spectrum; call
// [Spectrum.AdoptCorrected] to replace the working trace with the corrected
// one. Malformed spectra yield an empty result.
func (s *Spectrum) CorrectBaseline(method BaselineMethod, p BaselineParams) baseline.Result {
	switch method {
	case BaselineALS:
		return baseline.ALS(s.Y, p.ALS)
	case BaselineALSFast:
		return baseline.ALSFast(s.Y, p.ALS)
	case BaselinePolynomial:
		return baseline.Polynomial(s.X, s.Y, p.Degree)
	case BaselineLinear:
		return baseline.Linear(s.X, s.Y)
	default:
		return baseline.Auto(s.Y, p.ALS)
	}
}

// AdoptCorrected replaces the working intensities with the corrected trace of
// a baseline result. Previously detected peaks are invalidated by this and
// must be re-detected. Returns false when the result does not match the
// spectrum length.
func (s *Spectrum) AdoptCorrected(r baseline.Result) bool {
	if len(r.Corrected) != len(s.Y) {
		return false
	}

	copy(s.Y, r.Corrected)

	return true
}

// DetectPeaks runs peak detection on the current working spectrum.
//
// The spectrum's technique and mode are filled into the parameters for
// valley-mode determination, and peak IDs continue from previous runs so an
// ID is never reused. The full algorithm is attempted first with the
// simplified one as fallback.
func (s *Spectrum) DetectPeaks(p peaks.Params) []peaks.Peak {
	p.Technique = s.Technique
	p.Mode = s.Mode
	p.BaseID = s.nextPeakID + 1

	found := peaks.DetectSafe(s.X, s.Y, p)
	s.nextPeakID += len(found)

	return found
}

// IntegratePeaks integrates every detected peak over the current working
// data, deriving automatic boundaries where no manual ones exist and
// preserving manual boundaries from existing records.
func (s *Spectrum) IntegratePeaks(pks []peaks.Peak, existing map[int]integrate.Record, opts integrate.Options) map[int]integrate.Record {
	return integrate.All(s.X, s.Y, pks, existing, opts)
}

// ConvertMode converts the working intensities to the given mode, along with
// any derived artifacts: baseline points and detected-peak intensities are
// converted with the same transform so they stay consistent with the display
// mode. The converted copies are returned; the originals are not modified.
func (s *Spectrum) ConvertMode(to convert.DataMode, bl []float64, pks []peaks.Peak) ([]float64, []peaks.Peak) {
	from := s.Mode
	if from == to {
		return bl, pks
	}

	s.Y = convert.Values(s.Y, from, to)
	s.Mode = to

	var convertedBaseline []float64
	if len(bl) > 0 {
		convertedBaseline = convert.Values(bl, from, to)
	}

	convertedPeaks := make([]peaks.Peak, len(pks))
	for i, pk := range pks {
		pk.Y = convert.Values([]float64{pk.Y}, from, to)[0]
		convertedPeaks[i] = pk
	}

	return convertedBaseline, convertedPeaks
}

// ConvertUnits converts the x axis to the given unit (or the technique's
// conventional unit when toUnit is empty). Samples dropped by the conversion
// are removed from the intensity trace as well. Detected peaks are
// invalidated by a successful conversion and must be re-detected.
func (s *Spectrum) ConvertUnits(toUnit string) convert.UnitResult {
	res := convert.Wavelength(s.X, s.XUnit, toUnit, s.Technique)
	if !res.Converted {
		return res
	}

	y := make([]float64, len(res.Kept))
	for i, idx := range res.Kept {
		y[i] = s.Y[idx]
	}

	s.X = res.X
	s.Y = y
	s.XUnit = res.ToUnit

	return res
}
