// Package peaks finds local extrema in spectra, filtered by prominence,
// half-height width, and index separation.
//
// Detection operates in one of two orientations: peak mode finds local maxima
// and valley mode finds local minima. Valley mode is selected explicitly or
// inferred for transmittance-mode absorption techniques, where absorption
// features appear as dips. [Detect] implements the full algorithm,
// [DetectSimple] a cheaper fixed-window variant, and [DetectSafe] tries the
// full algorithm with the simple one as fallback.
//
// Detection is deterministic and has no side effects; malformed input yields
// an empty result rather than an error.
package peaks
