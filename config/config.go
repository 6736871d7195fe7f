// Package config groups the DMD driver's session-immutable configuration
// into one validated value, replacing the flat positional argument list of
// the original MEX entry point with named fields so callers and tests can
// construct a session without remembering a fixed argument order.
package config

import (
	"fmt"

	"github.com/lumenarray/dmd/dmderr"
	"github.com/lumenarray/dmd/lattice"
)

// Default screen dimensions, matching the source's SCR_WIDTH/SCR_HEIGHT.
const (
	DefaultWidth  = 1140
	DefaultHeight = 912
	// DefaultDMDRemapOrigin is the source's "607" constant, derived for
	// DefaultHeight; kept as configuration rather than a compiled-in
	// constant so a different panel height doesn't silently misalign.
	DefaultDMDRemapOrigin = 607
)

// Flags groups the driver loop's runtime toggles, generalized from the
// original demo's package-level const bool flags (DMD_MODE, LOOP_MODE,
// SLOW_MODE, WHITE_COLOR_MODE / DMD_COORD_MODE in original_source/).
type Flags struct {
	// LoopAtEnd restarts the smoothed track from iter 0 once every sample
	// has been presented, instead of stopping (LOOP_MODE).
	LoopAtEnd bool
	// PresentRemapped presents the DMD-coordinate remap of each frame
	// instead of the raw packed frame (DMD_COORD_MODE).
	PresentRemapped bool
	// DebugOverlay draws a status HUD onto the raw preview buffer before
	// presentation. Never applied to the remapped buffer.
	DebugOverlay bool
	// IdleDelayMillis, if nonzero, is slept between presented frames
	// (SLOW_MODE).
	IdleDelayMillis int
	// PlanWaitJitterMillis, if nonzero, randomizes the wait between the
	// end of one plan and the start of the next by up to this many
	// milliseconds, ported from the original demo's srand(time(NULL))
	// seeding.
	PlanWaitJitterMillis int
}

// Config is the DMD driver's immutable per-session configuration.
type Config struct {
	Width, Height  int
	Basis          lattice.Basis
	N              int
	TweezerRadius  int
	MaxPlanSteps   int
	DMDRemapOrigin int
	Flags          Flags
}

// New validates and returns a Config. N must be >= 1, TweezerRadius and
// MaxPlanSteps must be >= 0, and Width/Height must be positive.
func New(width, height int, basis lattice.Basis, n, tweezerRadius, maxPlanSteps, dmdRemapOrigin int, flags Flags) (Config, error) {
	if width <= 0 || height <= 0 {
		return Config{}, fmt.Errorf("config: width and height must be positive, got %dx%d", width, height)
	}
	if n < 1 {
		return Config{}, fmt.Errorf("config: N must be >= 1, got %d", n)
	}
	if tweezerRadius < 0 {
		return Config{}, fmt.Errorf("config: tweezer_radius must be >= 0, got %d", tweezerRadius)
	}
	if maxPlanSteps < 0 {
		return Config{}, fmt.Errorf("config: max_plan_steps must be >= 0, got %d", maxPlanSteps)
	}
	return Config{
		Width:          width,
		Height:         height,
		Basis:          basis,
		N:              n,
		TweezerRadius:  tweezerRadius,
		MaxPlanSteps:   maxPlanSteps,
		DMDRemapOrigin: dmdRemapOrigin,
		Flags:          flags,
	}, nil
}

// PositionalArgs mirrors the original MEX entry point's flat parameter
// list, kept for ABI parity with callers still shaped like the original
// MATLAB invocation.
type PositionalArgs struct {
	NumTweezers                  int
	OccupancyRows, OccupancyCols int
	Occupancy                    []byte
	TweezerRadius                int
	N                            int
	V1X, V1Y, V2X, V2Y           float64
	CX, CY                       float64
	Init                         int
}

// FromPositional validates a.Occupancy's population against a.NumTweezers
// and builds a Config from the remaining fields, using
// DefaultWidth/DefaultHeight/DefaultDMDRemapOrigin. It returns
// dmderr.ErrOccupancyMismatch if the counts disagree.
func FromPositional(a PositionalArgs, maxPlanSteps int, flags Flags) (Config, error) {
	if len(a.Occupancy) != a.OccupancyRows*a.OccupancyCols {
		return Config{}, fmt.Errorf("config: occupancy has %d cells, want %d: %w",
			len(a.Occupancy), a.OccupancyRows*a.OccupancyCols, dmderr.ErrOccupancyMismatch)
	}
	count := 0
	for _, v := range a.Occupancy {
		count += int(v)
	}
	if count != a.NumTweezers {
		return Config{}, fmt.Errorf("config: occupancy has %d ones, num_tweezers=%d: %w",
			count, a.NumTweezers, dmderr.ErrOccupancyMismatch)
	}

	basis := lattice.Basis{
		V1:     lattice.Vec2{X: a.V1X, Y: a.V1Y},
		V2:     lattice.Vec2{X: a.V2X, Y: a.V2Y},
		Center: lattice.Vec2{X: a.CX, Y: a.CY},
	}
	return New(DefaultWidth, DefaultHeight, basis, a.N, a.TweezerRadius, maxPlanSteps, DefaultDMDRemapOrigin, flags)
}
