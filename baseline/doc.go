// Package baseline estimates and removes background signal from spectra.
//
// Four estimators are provided:
//
//   - [ALS]: full asymmetric least-squares fit via a penalized linear system
//   - [ALSFast]: cheaper iterative local-smoothing approximation
//   - [Polynomial]: windowed minimum anchors with a fitted or interpolated line
//   - [Linear]: a single line through the first and last sample
//
// Every estimator returns a [Result] whose Corrected slice satisfies
// corrected[i] = max(0, y[i] - baseline[i]). The caller decides whether the
// corrected trace replaces the working spectrum.
package baseline
