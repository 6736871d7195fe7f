package rearrange

import (
	"fmt"
	"math/rand"

	"github.com/lumenarray/dmd/dmderr"
	"github.com/lumenarray/dmd/lattice"
)

// Occupancy is a binary occupancy matrix over a 2D lattice: a 1 at (r, c)
// means a tweezer currently sits at that site. It is mutated in place by
// Planner.Plan during planning.
type Occupancy struct {
	Rows, Cols int
	cells      []uint8 // row-major, len == Rows*Cols, values in {0,1}
}

// NewOccupancy builds an Occupancy from a row-major byte slice of 0/1
// values. It returns dmderr.ErrOccupancyMismatch if numTweezers disagrees
// with the count of 1s in cells.
func NewOccupancy(rows, cols, numTweezers int, cells []byte) (Occupancy, error) {
	if len(cells) != rows*cols {
		return Occupancy{}, fmt.Errorf("rearrange: occupancy has %d cells, want %d (%dx%d): %w",
			len(cells), rows*cols, rows, cols, dmderr.ErrOccupancyMismatch)
	}
	o := Occupancy{Rows: rows, Cols: cols, cells: make([]uint8, len(cells))}
	count := 0
	for i, v := range cells {
		if v != 0 && v != 1 {
			return Occupancy{}, fmt.Errorf("rearrange: cell %d has value %d, want 0 or 1", i, v)
		}
		o.cells[i] = uint8(v)
		count += int(v)
	}
	if count != numTweezers {
		return Occupancy{}, fmt.Errorf("rearrange: occupancy has %d ones, num_tweezers=%d: %w",
			count, numTweezers, dmderr.ErrOccupancyMismatch)
	}
	return o, nil
}

// RandomOccupancy places k tweezers at distinct random sites in an
// rows-by-cols grid, using rnd for site selection. Ported from the
// original demo's srand(time(NULL))-seeded placement loop
// (original_source/Main.cpp), generalized from a fixed 5x5 grid and a
// package-global RNG to arbitrary dimensions and an injected *rand.Rand so
// the result is reproducible in tests.
func RandomOccupancy(rows, cols, k int, rnd *rand.Rand) (Occupancy, error) {
	if k < 0 || k > rows*cols {
		return Occupancy{}, fmt.Errorf("rearrange: cannot place %d tweezers in a %dx%d grid", k, rows, cols)
	}
	o := Occupancy{Rows: rows, Cols: cols, cells: make([]uint8, rows*cols)}
	placed := 0
	for placed < k {
		r := rnd.Intn(rows)
		c := rnd.Intn(cols)
		if o.at(r, c) == 0 {
			o.set(r, c, 1)
			placed++
		}
	}
	return o, nil
}

func (o Occupancy) at(r, c int) uint8 { return o.cells[r*o.Cols+c] }

func (o Occupancy) set(r, c int, v uint8) { o.cells[r*o.Cols+c] = v }

// Sum returns the number of occupied sites.
func (o Occupancy) Sum() int {
	n := 0
	for _, v := range o.cells {
		n += int(v)
	}
	return n
}

// Sites returns every occupied site, in row-major scan order. The i-th
// entry is tweezer i's registered starting site.
func (o Occupancy) Sites() []lattice.Site {
	var sites []lattice.Site
	for r := 0; r < o.Rows; r++ {
		for c := 0; c < o.Cols; c++ {
			if o.at(r, c) == 1 {
				sites = append(sites, lattice.Site{Row: r, Col: c})
			}
		}
	}
	return sites
}

// centerOfMass computes the integer-truncated mean occupied-site
// coordinate.
func (o Occupancy) centerOfMass() lattice.Site {
	var sumR, sumC, n int
	for r := 0; r < o.Rows; r++ {
		for c := 0; c < o.Cols; c++ {
			if o.at(r, c) == 1 {
				sumR += r
				sumC += c
				n++
			}
		}
	}
	if n == 0 {
		return lattice.Site{}
	}
	return lattice.Site{Row: sumR / n, Col: sumC / n}
}
