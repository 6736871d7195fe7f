// Package lattice maps integer lattice-site coordinates to real-valued
// device-pixel coordinates through a 2D affine transform.
package lattice

// Vec2 is a real-valued 2D point or vector in device-pixel space.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Site is an integer lattice coordinate (row, column).
type Site struct {
	Row, Col int
}

// Basis defines the lattice coordinate system in device space: two basis
// vectors and a center. Immutable after construction.
type Basis struct {
	V1, V2 Vec2
	Center Vec2
}

// Transform maps a lattice site, recentered against an R-row by C-column
// occupancy matrix, to a device-pixel point:
//
//	device(r, c) = center + (r - R/2)*v1 + (c - C/2)*v2
//
// R/2 and C/2 use Go's integer truncation, matching the occupancy matrix
// the site was drawn from.
func (b Basis) Transform(site Site, rows, cols int) Vec2 {
	r := float64(site.Row - rows/2)
	c := float64(site.Col - cols/2)
	return b.Center.Add(b.V1.Scale(r)).Add(b.V2.Scale(c))
}
