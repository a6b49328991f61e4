package sim

import "github.com/san-kum/latticeflow/internal/lattice"

// The four pipeline stages below operate on one worker's band. Local
// row indices run 1..BandRows for owned rows; rows 0 and BandRows+1
// are halos and only ever serve as streaming sources. mask is the
// band-restricted obstacle mask, so grid row r pairs with mask row
// r-1.

// injectFlow adds a fixed eastward momentum increment to every
// unobstructed cell of the inlet row, mirrored as a decrement on the
// west-pointing distributions. A cell is skipped when the decrement
// would drive any west-pointing value negative; that guard keeps the
// density physical and is not an error.
func injectFlow(cells *lattice.Grid, mask *lattice.Mask, row int, density, accel float64) {
	w1 := density * accel / 9.0
	w2 := density * accel / 36.0

	for c := 0; c < cells.NX; c++ {
		cell := cells.Cell(row, c)
		if mask.Blocked(row-1, c) ||
			cell[lattice.West]-w1 <= 0 ||
			cell[lattice.NorthWest]-w2 <= 0 ||
			cell[lattice.SouthWest]-w2 <= 0 {
			continue
		}
		cell[lattice.East] += w1
		cell[lattice.NorthEast] += w2
		cell[lattice.SouthEast] += w2
		cell[lattice.West] -= w1
		cell[lattice.NorthWest] -= w2
		cell[lattice.SouthWest] -= w2
	}
}

// stream copies every distribution value one lattice step along its
// direction of travel, reading each component from the neighbor
// opposite that direction. It writes scratch only and runs over solid
// cells too; rebound corrects those afterwards. Column lookup wraps
// periodically, row lookup reaches at most one row into the halos.
func stream(cells, scratch *lattice.Grid) {
	for r := 1; r <= cells.BandRows; r++ {
		south, north := r-1, r+1
		for c := 0; c < cells.NX; c++ {
			east, west := cells.East(c), cells.West(c)
			dst := scratch.Cell(r, c)
			dst[lattice.Rest] = cells.Cell(r, c)[lattice.Rest]
			dst[lattice.East] = cells.Cell(r, west)[lattice.East]
			dst[lattice.North] = cells.Cell(south, c)[lattice.North]
			dst[lattice.West] = cells.Cell(r, east)[lattice.West]
			dst[lattice.South] = cells.Cell(north, c)[lattice.South]
			dst[lattice.NorthEast] = cells.Cell(south, west)[lattice.NorthEast]
			dst[lattice.NorthWest] = cells.Cell(south, east)[lattice.NorthWest]
			dst[lattice.SouthWest] = cells.Cell(north, east)[lattice.SouthWest]
			dst[lattice.SouthEast] = cells.Cell(north, west)[lattice.SouthEast]
		}
	}
}

// rebound applies the full bounce-back boundary condition: at every
// solid cell the six moving distributions are overwritten in the main
// buffer with the just-streamed scratch value of the opposite
// direction. Open cells are untouched.
func rebound(cells, scratch *lattice.Grid, mask *lattice.Mask) {
	for r := 1; r <= cells.BandRows; r++ {
		for c := 0; c < cells.NX; c++ {
			if !mask.Blocked(r-1, c) {
				continue
			}
			dst := cells.Cell(r, c)
			src := scratch.Cell(r, c)
			for k := lattice.East; k < lattice.Q; k++ {
				dst[k] = src[lattice.Opposite(k)]
			}
		}
	}
}

// collide relaxes every open cell's just-streamed distribution toward
// its local equilibrium at rate omega, writing the result back into
// the main buffer. Solid cells are skipped; rebound already fixed
// their state.
func collide(cells, scratch *lattice.Grid, mask *lattice.Mask, omega float64) {
	var eq [lattice.Q]float64
	for r := 1; r <= cells.BandRows; r++ {
		for c := 0; c < cells.NX; c++ {
			if mask.Blocked(r-1, c) {
				continue
			}
			src := scratch.Cell(r, c)
			rho := lattice.Density(src)
			ux, uy := lattice.Velocity(src)
			lattice.Equilibrium(rho, ux, uy, &eq)

			dst := cells.Cell(r, c)
			for k := 0; k < lattice.Q; k++ {
				dst[k] = src[k] + omega*(eq[k]-src[k])
			}
		}
	}
}
