// Package dmderr collects the sentinel errors the DMD driver core must
// distinguish, per the core's error handling design.
//
// There is no OutOfMemory sentinel here: Go surfaces allocation failure as
// a fatal runtime condition, not a recoverable error value, so it cannot be
// modeled as one of these — the caller should treat an OOM-triggered panic
// from any of this module's packages as fatal, exactly as the source never
// attempted to recover from one either.
package dmderr

import "errors"

var (
	// ErrPresentationInitFailed indicates the presentation primitive
	// refused to initialize (for example, a required secondary display is
	// absent). Fatal; surfaces to the caller unchanged.
	ErrPresentationInitFailed = errors.New("dmd: presentation primitive failed to initialize")

	// ErrPlanOverflow indicates the planner exceeded the configured
	// MaxPlanSteps before a sweep produced zero moves. The caller may
	// retry with a larger budget or a smaller initial cluster.
	ErrPlanOverflow = errors.New("dmd: planner exceeded max plan steps")

	// ErrOccupancyMismatch indicates the declared tweezer count disagrees
	// with the number of occupied sites in the supplied occupancy matrix.
	ErrOccupancyMismatch = errors.New("dmd: num_tweezers disagrees with occupancy population")
)
