package convert

// Known technique names returned by InferTechnique.
const (
	TechniqueUVVis   = "uv-vis"
	TechniqueIR      = "ir"
	TechniqueRaman   = "raman"
	TechniqueUnknown = "unknown"
)

// InferTechnique classifies the spectroscopic technique from the x-axis
// range. UV-Vis spectra typically span 200-800 nm, IR spectra 4000-400 cm⁻¹,
// and Raman shifts 0-4000 cm⁻¹. The classification is a heuristic for spectra
// that arrive without recorded technique metadata; x ranges shared by several
// techniques resolve in the order above.
func InferTechnique(x []float64) string {
	if len(x) == 0 {
		return TechniqueUnknown
	}

	minX, maxX := x[0], x[0]
	for _, v := range x[1:] {
		if v < minX {
			minX = v
		}

		if v > maxX {
			maxX = v
		}
	}

	switch {
	case minX >= 200 && maxX <= 1000:
		return TechniqueUVVis
	case minX >= 400 && maxX <= 4000:
		return TechniqueIR
	case minX >= 0 && maxX <= 4000:
		return TechniqueRaman
	default:
		return TechniqueUnknown
	}
}
