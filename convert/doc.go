// Package convert handles the two display-state transforms of a working
// spectrum: absorbance/transmittance mode conversion on the intensity axis and
// wavelength/wavenumber unit conversion on the x axis.
//
// Both transforms are pure: they return new slices and never mutate their
// inputs. Mode detection ([DetectMode]) combines metadata matching, a
// value-range heuristic, and technique defaults; [InferTechnique] classifies a
// spectrum's technique from its x range when no technique is recorded.
package convert
