// Package device bridges the smoothed-track packer and DMD remap to a
// presenter.Presenter, owning the two reused RGB frame buffers the driver
// loop reuses across ticks.
//
// Adapted from waveshare-epd/epd2in66b.Device: that driver owns a pair of
// reused bit-plane buffers (blackBuffer/redBuffer), zeroed by ClearBuffer
// and handed to its transport in Display via a command/data sequence. This
// Device owns a pair of reused RGB-plane buffers (raw/remapped) and hands
// them to a presenter.Presenter in Display.
package device

import (
	"fmt"

	"github.com/lumenarray/dmd/config"
	"github.com/lumenarray/dmd/debugoverlay"
	"github.com/lumenarray/dmd/dmderr"
	"github.com/lumenarray/dmd/frame"
	"github.com/lumenarray/dmd/presenter"
	"github.com/lumenarray/dmd/remap"
	"github.com/lumenarray/dmd/smoothtrack"
)

// Device owns the raw and DMD-remapped frame buffers and drives a
// presenter.Presenter with packed, optionally remapped, optionally
// overlaid frames.
type Device struct {
	p   presenter.Presenter
	cfg config.Config

	packer   frame.Packer
	raw      *frame.RGBFrame
	remapped *frame.RGBFrame
}

// New allocates a Device bound to p and cfg. The presenter is not
// initialized until Configure is called.
func New(p presenter.Presenter, cfg config.Config) *Device {
	return &Device{
		p:        p,
		cfg:      cfg,
		packer:   frame.Packer{Radius: cfg.TweezerRadius},
		raw:      frame.NewRGBFrame(cfg.Width, cfg.Height),
		remapped: frame.NewRGBFrame(cfg.Width, cfg.Height),
	}
}

// Configure initializes the underlying presenter. It wraps
// dmderr.ErrPresentationInitFailed if initialization fails.
func (d *Device) Configure() error {
	if err := d.p.Init(); err != nil {
		return fmt.Errorf("device: %v: %w", err, dmderr.ErrPresentationInitFailed)
	}
	return nil
}

// ClearBuffers zeroes both owned frame buffers, mirroring
// epd2in66b.Device.ClearBuffer.
func (d *Device) ClearBuffers() {
	d.raw.Clear()
	d.remapped.Clear()
}

// Display packs tick iter of track into the raw buffer, remaps it into the
// remapped buffer, and uploads whichever buffer cfg.Flags.PresentRemapped
// selects. The debug HUD, when enabled, is drawn onto the raw buffer after
// the remap has already been computed from the clean packed frame, and
// only when the raw (not remapped) buffer is the one being presented — a
// physical DMD always reads the remapped buffer's bit planes, which must
// never carry HUD pixels.
func (d *Device) Display(track smoothtrack.SmoothedTrack, iter int) error {
	d.packer.Pack(d.raw, track, iter)
	remap.Remap(d.remapped, d.raw, d.cfg.DMDRemapOrigin)

	out := d.raw
	if d.cfg.Flags.PresentRemapped {
		out = d.remapped
	} else if d.cfg.Flags.DebugOverlay {
		debugoverlay.Draw(d.raw, debugoverlay.Status{
			Iter:     iter,
			Tweezers: track.NumTweezers(),
			PlanLen:  track.MaxLen(),
		})
	}
	return d.p.UploadRGB(out.W, out.H, out.Pix)
}

// ShouldClose reports the underlying presenter's close signal.
func (d *Device) ShouldClose() bool { return d.p.ShouldClose() }

// Close tears down the underlying presenter.
func (d *Device) Close() error { return d.p.Close() }
