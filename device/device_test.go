package device

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/lumenarray/dmd/config"
	"github.com/lumenarray/dmd/lattice"
	"github.com/lumenarray/dmd/presenter"
	"github.com/lumenarray/dmd/smoothtrack"
)

func testConfig(c *qt.C, presentRemapped bool) config.Config {
	cfg, err := config.New(20, 20, lattice.Basis{
		V1: lattice.Vec2{X: 1, Y: 0}, V2: lattice.Vec2{X: 0, Y: 1},
	}, 1, 0, 10, 7, config.Flags{PresentRemapped: presentRemapped})
	c.Assert(err, qt.IsNil)
	return cfg
}

func TestDeviceConfigureAndDisplay(t *testing.T) {
	c := qt.New(t)

	rec := &presenter.Recorder{}
	d := New(rec, testConfig(c, false))
	c.Assert(d.Configure(), qt.IsNil)

	track := smoothtrack.SmoothedTrack{{
		{X: 5, Y: 5},
	}}
	c.Assert(d.Display(track, 0), qt.IsNil)
	c.Assert(rec.UploadCount, qt.Equals, 1)
	c.Assert(rec.LastW, qt.Equals, 20)
	c.Assert(rec.LastH, qt.Equals, 20)
}

func TestDeviceClearBuffersResetsOutput(t *testing.T) {
	c := qt.New(t)

	rec := &presenter.Recorder{}
	d := New(rec, testConfig(c, false))
	c.Assert(d.Configure(), qt.IsNil)

	track := smoothtrack.SmoothedTrack{{{X: 5, Y: 5}}}
	c.Assert(d.Display(track, 0), qt.IsNil)

	anyNonZero := false
	for _, b := range rec.LastPix {
		if b != 0 {
			anyNonZero = true
		}
	}
	c.Assert(anyNonZero, qt.IsTrue)

	d.ClearBuffers()
	c.Assert(d.Display(smoothtrack.SmoothedTrack{{}}, 0), qt.IsNil)
	for _, b := range rec.LastPix {
		c.Assert(b, qt.Equals, byte(0))
	}
}

func TestDeviceShouldCloseDelegates(t *testing.T) {
	c := qt.New(t)

	rec := &presenter.Recorder{}
	d := New(rec, testConfig(c, false))
	c.Assert(d.ShouldClose(), qt.IsFalse)
	rec.SetShouldClose(true)
	c.Assert(d.ShouldClose(), qt.IsTrue)
}
