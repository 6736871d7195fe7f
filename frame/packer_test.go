package frame

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/lumenarray/dmd/lattice"
	"github.com/lumenarray/dmd/smoothtrack"
)

// A tweezer held at the same pixel for all 24 sub-frames with radius 0
// must saturate that pixel's R, G, and B channels to 0xFF and leave every
// other byte untouched.
func TestPackSingleTweezerAllOnes(t *testing.T) {
	c := qt.New(t)

	pts := make([]lattice.Vec2, 24)
	for i := range pts {
		pts[i] = lattice.Vec2{X: 100, Y: 100}
	}
	track := smoothtrack.SmoothedTrack{pts}

	dst := NewRGBFrame(1140, 912)
	Packer{Radius: 0}.Pack(dst, track, 0)

	off, ok := dst.At(100, 100)
	c.Assert(ok, qt.IsTrue)
	c.Assert(dst.Pix[off], qt.Equals, byte(0xFF))
	c.Assert(dst.Pix[off+1], qt.Equals, byte(0xFF))
	c.Assert(dst.Pix[off+2], qt.Equals, byte(0xFF))

	for i, b := range dst.Pix {
		if i == off || i == off+1 || i == off+2 {
			continue
		}
		c.Assert(b, qt.Equals, byte(0), qt.Commentf("byte %d should be 0", i))
	}
}

// Reading a packed pixel back bit-7-to-bit-0 per channel must recover the
// exact per-sub-frame on/off pattern it was packed from.
func TestPackBitEncodingRoundTrips(t *testing.T) {
	c := qt.New(t)

	occupied := []bool{
		true, false, true, true, false, false, true, false, // R: j 0..7
		false, true, true, false, true, false, false, true, // G: j 8..15
		true, true, false, false, true, false, true, false, // B: j 16..23
	}

	var pts []lattice.Vec2
	for _, on := range occupied {
		if on {
			pts = append(pts, lattice.Vec2{X: 50, Y: 60})
		} else {
			// Park elsewhere so the 0 bit is genuinely absent, not just
			// never drawn at (50,60).
			pts = append(pts, lattice.Vec2{X: 0, Y: 0})
		}
	}
	track := smoothtrack.SmoothedTrack{pts}

	dst := NewRGBFrame(1140, 912)
	Packer{Radius: 0}.Pack(dst, track, 0)

	off, ok := dst.At(50, 60)
	c.Assert(ok, qt.IsTrue)

	var got []bool
	for ch := 0; ch < 3; ch++ {
		b := dst.Pix[off+ch]
		for bit := 7; bit >= 0; bit-- {
			got = append(got, b&(1<<uint(bit)) != 0)
		}
	}
	c.Assert(got, qt.DeepEquals, occupied)
}

func TestPackOutOfBoundsClamped(t *testing.T) {
	c := qt.New(t)

	pts := []lattice.Vec2{{X: 0, Y: 0}}
	track := smoothtrack.SmoothedTrack{pts}

	dst := NewRGBFrame(5, 5)
	// Should not panic despite the draw square extending past the edges.
	Packer{Radius: 3}.Pack(dst, track, 0)
	c.Assert(len(dst.Pix), qt.Equals, 5*5*3)
}

func TestPackClampsNegativeCoordinates(t *testing.T) {
	c := qt.New(t)

	// A tweezer near the edge with OR semantics must not wrap or corrupt
	// neighboring rows when dx/dy go negative.
	pts := []lattice.Vec2{{X: 0, Y: 0}}
	track := smoothtrack.SmoothedTrack{pts}

	dst := NewRGBFrame(10, 10)
	Packer{Radius: 1}.Pack(dst, track, 0)

	off, ok := dst.At(0, 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(dst.Pix[off], qt.Equals, byte(0x80)) // j=0 -> bit 7
}
