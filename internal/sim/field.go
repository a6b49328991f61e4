package sim

import (
	"math"

	"github.com/san-kum/latticeflow/internal/lattice"
)

// FieldCell is one cell of the assembled final state: macroscopic
// velocity, speed, pressure and the obstacle flag, in global
// coordinates.
type FieldCell struct {
	X, Y     int
	UX, UY   float64
	Speed    float64
	Pressure float64
	Blocked  bool
}

// Field assembles the per-cell final state from every band's current
// buffer, ordered row by row over the global grid. Solid cells report
// zero velocity and the reference-density pressure.
func (s *Simulator) Field() []FieldCell {
	out := make([]FieldCell, 0, s.params.NX*s.params.NY)
	for _, w := range s.workers {
		for r := 1; r <= w.cells.BandRows; r++ {
			y := w.band.Start + r - 1
			for x := 0; x < s.params.NX; x++ {
				fc := FieldCell{X: x, Y: y}
				if w.mask.Blocked(r-1, x) {
					fc.Blocked = true
					fc.Pressure = s.params.Density * lattice.CSq
				} else {
					cell := w.cells.Cell(r, x)
					rho := lattice.Density(cell)
					fc.UX, fc.UY = lattice.Velocity(cell)
					fc.Speed = math.Sqrt(fc.UX*fc.UX + fc.UY*fc.UY)
					fc.Pressure = rho * lattice.CSq
				}
				out = append(out, fc)
			}
		}
	}
	return out
}
