// Package smooth reduces noise in spectra ahead of peak detection.
//
// Three methods are provided, from cheapest to highest quality:
//
//   - [MovingAverage]: centered box smooth
//   - [SavitzkyGolay]: quadratic/cubic polynomial smoothing for common
//     odd window sizes, preserving peak shape better than a box smooth
//   - [Lowpass]: FFT low-pass with a cosine roll-off
//
// All methods preserve input length and leave the input untouched.
package smooth
