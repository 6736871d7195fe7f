package frame

import (
	"math"

	"github.com/lumenarray/dmd/smoothtrack"
)

// Packer steps through a set of smoothed device-space tracks in chunks of
// 24 samples and packs each chunk into one RGBFrame: each tweezer is drawn
// as a filled square of side 2*Radius+1, and sub-frame j in [0,24) OR's its
// bit into R (j<8), G (8<=j<16), or B (16<=j<24) at bit position
// 7-(j mod 8).
type Packer struct {
	// Radius is the half-side of the square drawn for each tweezer, in
	// pixels.
	Radius int
}

const ticksPerFrame = 24

// Pack zeroes dst and packs sub-frames [iter*24, iter*24+24) of track into
// it. Samples beyond the end of a tweezer's track are simply skipped, so
// the last chunk of a track may be partially populated. Pack is idempotent
// for a given iter.
func (p Packer) Pack(dst *RGBFrame, track smoothtrack.SmoothedTrack, iter int) {
	dst.Clear()
	base := iter * ticksPerFrame
	for _, pts := range track {
		for j := 0; j < ticksPerFrame; j++ {
			k := base + j
			if k >= len(pts) {
				break
			}
			x := int(math.Floor(pts[k].X))
			y := int(math.Floor(pts[k].Y))
			bit := byte(1) << uint(7-(j%8))
			channel := j / 8 // 0=R, 1=G, 2=B
			for dx := -p.Radius; dx <= p.Radius; dx++ {
				for dy := -p.Radius; dy <= p.Radius; dy++ {
					off, ok := dst.At(x+dx, y+dy)
					if !ok {
						continue
					}
					dst.Pix[off+channel] |= bit
				}
			}
		}
	}
}
