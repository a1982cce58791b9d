package integrate

import "errors"

// boundaryTolerance is the minimum x distance between the two clicked
// boundary points.
const boundaryTolerance = 0.01

// ErrBoundaryTooClose is returned when the second boundary click lands within
// tolerance of the first. It is a transient condition: the selector stays in
// the awaiting-end state and the next click is evaluated fresh.
var ErrBoundaryTooClose = errors.New("integrate: boundary points must differ")

// SelectorState is the state of the two-click boundary protocol.
type SelectorState int

// Selector states.
const (
	StateIdle SelectorState = iota
	StateAwaitingStart
	StateAwaitingEnd
)

// Selector implements the interactive two-click boundary-selection protocol
// for a single peak.
//
// Selecting a peak ([Selector.Begin]) moves the selector to awaiting-start.
// The first click sets the start boundary; the second click, if far enough
// from the first, completes the pair. The completed boundaries are ordered as
// (min, max), marked manually adjusted, and the area is recomputed from the
// x/y data passed to the click call, which is always the caller's current
// working data rather than a snapshot held by the selector.
type Selector struct {
	state  SelectorState
	peakID int
	startX float64
}

// State returns the current protocol state.
func (s *Selector) State() SelectorState { return s.state }

// PeakID returns the ID of the peak being adjusted, or 0 when idle.
func (s *Selector) PeakID() int { return s.peakID }

// Begin starts boundary selection for the given peak.
func (s *Selector) Begin(peakID int) {
	s.state = StateAwaitingStart
	s.peakID = peakID
	s.startX = 0
}

// Cancel returns the selector to idle without touching any boundaries.
func (s *Selector) Cancel() {
	*s = Selector{}
}

// Click feeds one spectrum click into the protocol.
//
// x and y must be the current working spectrum at click time. The first click
// records the start boundary and returns done=false. The second click
// completes the pair and returns the recomputed Record with done=true, unless
// it lands within 0.01 of the start boundary, in which case
// [ErrBoundaryTooClose] is returned and the selector stays in awaiting-end.
// Clicks while idle are ignored.
func (s *Selector) Click(x, y []float64, clickX float64) (rec Record, done bool, err error) {
	switch s.state {
	case StateAwaitingStart:
		s.startX = clickX
		s.state = StateAwaitingEnd

		return Record{}, false, nil

	case StateAwaitingEnd:
		if diff := clickX - s.startX; diff < boundaryTolerance && diff > -boundaryTolerance {
			return Record{}, false, ErrBoundaryTooClose
		}

		lo, hi := s.startX, clickX
		if lo > hi {
			lo, hi = hi, lo
		}

		start, end := BoundaryIndices(x, lo, hi)

		rec = Record{
			Area:             Area(x, y, start, end),
			StartX:           lo,
			EndX:             hi,
			ManuallyAdjusted: true,
		}

		*s = Selector{}

		return rec, true, nil

	default:
		return Record{}, false, nil
	}
}
