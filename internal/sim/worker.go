package sim

import (
	"github.com/san-kum/latticeflow/internal/decomp"
	"github.com/san-kum/latticeflow/internal/halo"
	"github.com/san-kum/latticeflow/internal/lattice"
)

// worker owns one band of the grid: its current and scratch buffers,
// its band-restricted obstacle mask and its endpoint on the halo ring.
// No memory is shared between workers; boundary rows travel only
// through the exchanger.
type worker struct {
	band    decomp.Band
	cells   *lattice.Grid // current state
	scratch *lattice.Grid // streaming target
	mask    *lattice.Mask
	ex      *halo.Exchanger

	// injectRow is the local index of the inlet row, or 0 when this
	// band does not own it.
	injectRow int

	density, accel, omega float64
}

// step advances the band by one timestep. Injection runs before the
// exchange so that, when the inlet row is a band boundary row, the
// neighbor's halo copy carries the post-injection values the
// single-worker run would see. Streaming reads only the current
// buffer, writes only scratch; rebound and collision read scratch and
// write back into current, so no stage races with another within the
// band.
func (w *worker) step() {
	if w.injectRow > 0 {
		injectFlow(w.cells, w.mask, w.injectRow, w.density, w.accel)
	}
	w.ex.Exchange(w.cells)
	stream(w.cells, w.scratch)
	rebound(w.cells, w.scratch, w.mask)
	collide(w.cells, w.scratch, w.mask, w.omega)
}
