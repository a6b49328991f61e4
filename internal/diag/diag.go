// Package diag computes convergence and conservation diagnostics from
// lattice state: mean flow velocity, total density and the Reynolds
// number of a run.
package diag

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/latticeflow/internal/lattice"
)

// Viscosity returns the lattice kinematic viscosity implied by the
// relaxation coefficient omega.
func Viscosity(omega float64) float64 {
	return (1.0 / 6.0) * (2.0/omega - 1.0)
}

// Reynolds returns the Reynolds number for a mean velocity, reference
// dimension and relaxation coefficient.
func Reynolds(avgVel float64, reynoldsDim int, omega float64) float64 {
	return avgVel * float64(reynoldsDim) / Viscosity(omega)
}

// BandVelocity accumulates, over the unobstructed owned cells of a
// band, the sum of velocity magnitudes and the cell count. mask must
// be the band-restricted mask, so its row 0 corresponds to the band's
// first owned row.
func BandVelocity(g *lattice.Grid, mask *lattice.Mask) (sum float64, open int) {
	for r := 1; r <= g.BandRows; r++ {
		for c := 0; c < g.NX; c++ {
			if mask.Blocked(r-1, c) {
				continue
			}
			ux, uy := lattice.Velocity(g.Cell(r, c))
			sum += math.Sqrt(ux*ux + uy*uy)
			open++
		}
	}
	return sum, open
}

// BandDensity returns the sum of every distribution value in a band's
// owned rows. Halo rows are excluded so that summing across all bands
// counts each global cell exactly once.
func BandDensity(g *lattice.Grid) float64 {
	return floats.Sum(g.Owned())
}

// TraceStats summarizes an average-velocity trace.
type TraceStats struct {
	Min, Max, Mean float64
}

// Stats returns the range and mean of a trace. A nil or empty trace
// yields the zero value.
func Stats(trace []float64) TraceStats {
	if len(trace) == 0 {
		return TraceStats{}
	}
	return TraceStats{
		Min:  floats.Min(trace),
		Max:  floats.Max(trace),
		Mean: floats.Sum(trace) / float64(len(trace)),
	}
}
