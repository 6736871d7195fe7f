// Package driverloop orchestrates the full pipeline — plan, smooth, pack,
// remap, present — in the fixed order the device requires:
// plan -> smooth -> pack(iter=0) -> present -> pack(iter=1) -> present -> …
// A frame can't be packed before its track is smoothed, and remap/present
// each depend on that tick's packed frame, so the stages can't reorder.
//
// All work runs on the calling goroutine; driverloop never starts its own
// goroutines, since a single in-flight frame is all the device can present
// at a time.
package driverloop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lumenarray/dmd/config"
	"github.com/lumenarray/dmd/device"
	"github.com/lumenarray/dmd/rearrange"
	"github.com/lumenarray/dmd/smoothtrack"
)

// Loop drives one Device through repeated plan/smooth/pack/present cycles
// for a given occupancy, until the device's presenter signals close or the
// current track has been fully presented and cfg.Flags.LoopAtEnd is false.
type Loop struct {
	Device *device.Device
	Cfg    config.Config
	Rand   *rand.Rand // used only for PlanWaitJitterMillis; may be nil if jitter is 0

	planner rearrange.Planner
	track   smoothtrack.SmoothedTrack
	iter    int
}

// NewLoop builds a Loop bound to d and cfg.
func NewLoop(d *device.Device, cfg config.Config) *Loop {
	return &Loop{
		Device:  d,
		Cfg:     cfg,
		planner: rearrange.Planner{MaxSteps: cfg.MaxPlanSteps},
	}
}

// Replan plans and smooths a fresh track from occ, replacing any
// in-progress track, and resets the presentation tick to 0. occ is
// consumed (mutated in place by planning), matching rearrange.Planner's
// contract.
func (l *Loop) Replan(occ rearrange.Occupancy) error {
	plan, err := l.planner.Plan(occ)
	if err != nil {
		return fmt.Errorf("driverloop: %w", err)
	}
	deviceTrack := smoothtrack.ToDeviceTrack(plan, l.Cfg.Basis, occ.Rows, occ.Cols)
	l.track = smoothtrack.Smooth(deviceTrack, l.Cfg.N)
	l.iter = 0
	return nil
}

// Step presents exactly one tick of the current track and advances the
// iterator. It reports done=true when the track has been fully presented
// this call (the driver loop should then idle, loop, or wait for a
// replan, per cfg.Flags.LoopAtEnd).
func (l *Loop) Step() (done bool, err error) {
	if l.track == nil {
		return true, fmt.Errorf("driverloop: Step called before Replan")
	}
	if err := l.Device.Display(l.track, l.iter); err != nil {
		return false, err
	}
	l.iter++
	if l.ticksRemaining() {
		return false, nil
	}
	if l.Cfg.Flags.LoopAtEnd {
		l.iter = 0
	}
	return true, nil
}

func (l *Loop) ticksRemaining() bool {
	for _, pts := range l.track {
		if l.iter*24 < len(pts) {
			return true
		}
	}
	return false
}

// Run steps the loop until the presenter requests close, sleeping
// cfg.Flags.IdleDelayMillis between presented frames and, when a track
// finishes and LoopAtEnd is false, waiting up to
// cfg.Flags.PlanWaitJitterMillis (chosen uniformly via l.Rand) before
// returning control to the caller for a replan. sleep is injected so tests
// can run without wall-clock delay.
func (l *Loop) Run(sleep func(time.Duration)) error {
	if sleep == nil {
		sleep = time.Sleep
	}
	for !l.Device.ShouldClose() {
		done, err := l.Step()
		if err != nil {
			return err
		}
		if l.Cfg.Flags.IdleDelayMillis > 0 {
			sleep(time.Duration(l.Cfg.Flags.IdleDelayMillis) * time.Millisecond)
		}
		if done && !l.Cfg.Flags.LoopAtEnd {
			if l.Cfg.Flags.PlanWaitJitterMillis > 0 && l.Rand != nil {
				sleep(time.Duration(l.Rand.Intn(l.Cfg.Flags.PlanWaitJitterMillis)) * time.Millisecond)
			}
			return nil
		}
	}
	return nil
}
