// Package analysis ties the spectral engine together around a working
// spectrum.
//
// A [Spectrum] is created from raw ingested data and mutated in place by
// baseline correction, mode conversion, and unit conversion. Peaks are
// derived from the current working spectrum and invalidated by it; all
// cross-stage state travels as explicit arguments and return values, never as
// shared singletons.
//
// The package also defines the persistence-collaborator contract: analysis
// results serialize into [Record] payloads keyed by method name, and
// [RestoreBaseline] / [RestorePeaks] reconstruct engine state from a reload
// without recomputation. [WriteCSV] exports peak records for reporting.
package analysis
