// Package integrate computes trapezoidal peak areas and manages integration
// boundaries.
//
// Boundaries come from three sources: automatic symmetric windows derived from
// a peak's detected width, explicit (startX, endX) pairs mapped to the nearest
// enclosing sample indices, and the interactive two-click [Selector] protocol.
// All index mapping is axis-direction aware, so ascending and descending
// x axes produce the same areas for the same boundary pair.
package integrate
