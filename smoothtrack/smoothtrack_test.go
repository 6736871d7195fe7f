package smoothtrack

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/lumenarray/dmd/lattice"
)

// An upsample factor of 1 must leave the track's samples unchanged.
func TestSmoothNEqualsOneIsIdentity(t *testing.T) {
	c := qt.New(t)

	track := DeviceTrack{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	}}
	got := Smooth(track, 1)
	want := SmoothedTrack{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10},
	}}
	c.Assert(got, qt.DeepEquals, want)
}

// Upsampling a two-point track by a factor of 2 must insert the exact
// midpoint between them.
func TestSmoothInterpolatesMidpoint(t *testing.T) {
	c := qt.New(t)

	track := DeviceTrack{{
		{X: 0, Y: 0}, {X: 10, Y: 20},
	}}
	got := Smooth(track, 2)
	want := SmoothedTrack{{
		{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 20},
	}}
	c.Assert(got, qt.DeepEquals, want)
}

// The smoothed track's first and last samples must equal the original
// track's first and last points exactly, regardless of N.
func TestSmoothEndpoints(t *testing.T) {
	c := qt.New(t)

	track := DeviceTrack{{
		{X: 0, Y: 0}, {X: 3, Y: 9}, {X: 6, Y: 0}, {X: 9, Y: 9},
	}}
	n := 4
	got := Smooth(track, n)[0]

	c.Assert(got[0], qt.Equals, track[0][0])
	last := n*(len(track[0])-1) + 1 - 1
	c.Assert(got[last], qt.Equals, track[0][len(track[0])-1])
}

// Every interior sample of a segment must lie exactly on the line between
// its endpoints, at parameter k/N.
func TestSmoothLinearity(t *testing.T) {
	c := qt.New(t)

	track := DeviceTrack{{
		{X: 0, Y: 0}, {X: 12, Y: -8},
	}}
	n := 3
	got := Smooth(track, n)[0]

	for k := 0; k < n; k++ {
		frac := float64(k) / float64(n)
		wantX := track[0][0].X + frac*(track[0][1].X-track[0][0].X)
		wantY := track[0][0].Y + frac*(track[0][1].Y-track[0][0].Y)
		c.Assert(got[k].X, qt.CmpEquals(), wantX)
		c.Assert(got[k].Y, qt.CmpEquals(), wantY)
	}
}

func TestSmoothDoesNotOverwriteInteriorBoundaries(t *testing.T) {
	c := qt.New(t)

	// Three segments: the corrected smoother must not stomp the j=1
	// boundary sample with the track's final point.
	track := DeviceTrack{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}
	n := 2
	got := Smooth(track, n)[0]

	// boundary between segment 0 and 1 sits at index n == 2, and must equal
	// D[1], not D[T-1].
	c.Assert(got[n], qt.Equals, lattice.Vec2{X: 10, Y: 0})
}
