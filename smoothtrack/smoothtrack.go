// Package smoothtrack converts a per-tweezer lattice-space plan into
// device-pixel trajectories and linearly interpolates between consecutive
// samples to upsample them in time ("smoothing").
package smoothtrack

import (
	"github.com/lumenarray/dmd/lattice"
	"github.com/lumenarray/dmd/rearrange"
)

// DeviceTrack holds, for each tweezer i, its device-pixel position at each
// planning step: DeviceTrack[i][t].
type DeviceTrack [][]lattice.Vec2

// SmoothedTrack holds, for each tweezer i, a length N*(T-1)+1 sequence of
// device-pixel points, linearly interpolated between consecutive
// DeviceTrack samples.
type SmoothedTrack [][]lattice.Vec2

// NumTweezers returns len(t).
func (t SmoothedTrack) NumTweezers() int { return len(t) }

// MaxLen returns the length of the longest per-tweezer sample sequence in
// t (all tweezers share the same length in a well-formed track, but this
// tolerates ragged input for status reporting).
func (t SmoothedTrack) MaxLen() int {
	max := 0
	for _, pts := range t {
		if len(pts) > max {
			max = len(pts)
		}
	}
	return max
}

// ToDeviceTrack transforms a lattice-space plan into device space via
// basis, recentering each site against an occRows-by-occCols occupancy
// matrix.
func ToDeviceTrack(plan rearrange.Plan, basis lattice.Basis, occRows, occCols int) DeviceTrack {
	track := make(DeviceTrack, plan.NumTweezers())
	for i, sites := range plan {
		track[i] = make([]lattice.Vec2, len(sites))
		for t, s := range sites {
			track[i][t] = basis.Transform(s, occRows, occCols)
		}
	}
	return track
}

// Smooth linearly interpolates N samples between every consecutive pair of
// points in each tweezer's device track, producing a length N*(T-1)+1
// sequence per tweezer. N must be >= 1.
//
// For segment j, the N samples at indices [j*N, (j+1)*N) are
// D[j] + k*(D[j+1]-D[j])/N for k in [0, N); the very last sample,
// (T-1)*N, is set once, after all segments, to D[T-1] — this is the
// corrected form of the source's per-segment terminal write, which
// overwrote that boundary sample on every iteration of the outer loop
// instead of only the last (see the smoothtrack entry in DESIGN.md).
func Smooth(track DeviceTrack, n int) SmoothedTrack {
	if n < 1 {
		n = 1
	}
	out := make(SmoothedTrack, len(track))
	for i, pts := range track {
		t := len(pts)
		if t == 0 {
			out[i] = nil
			continue
		}
		if t == 1 {
			out[i] = []lattice.Vec2{pts[0]}
			continue
		}
		length := n*(t-1) + 1
		samples := make([]lattice.Vec2, length)
		for j := 0; j < t-1; j++ {
			delta := lattice.Vec2{
				X: (pts[j+1].X - pts[j].X) / float64(n),
				Y: (pts[j+1].Y - pts[j].Y) / float64(n),
			}
			for k := 0; k < n; k++ {
				samples[j*n+k] = pts[j].Add(delta.Scale(float64(k)))
			}
		}
		samples[length-1] = pts[t-1]
		out[i] = samples
	}
	return out
}
