// Package halo synchronizes band boundary rows between ring neighbors.
//
// Each worker owns two directed channels: one carrying its topmost
// owned row to the neighbor above, one carrying its bottommost owned
// row to the neighbor below. A row travels as a packed copy of its
// nx×Q float64 values, so sender and receiver never alias grid memory.
//
// The channels have capacity one. A worker's send for timestep t+1
// cannot complete until the neighbor has consumed the row for
// timestep t, which keeps the ring in lockstep: a worker can never
// observe two different timesteps' rows within one exchange.
//
// There is no timeout or cancellation inside an exchange. A stalled
// worker stalls the whole ring, which is accepted as fatal: a stale
// halo would silently break mass conservation rather than crash.
package halo

import "github.com/san-kum/latticeflow/internal/lattice"

// Ring holds the boundary-row channels for all workers. up[r] carries
// rows from worker r to the worker above it; down[r] to the worker
// below.
type Ring struct {
	nx   int
	up   []chan []float64
	down []chan []float64
}

// NewRing builds the channel ring for workers bands over nx columns.
func NewRing(workers, nx int) *Ring {
	r := &Ring{
		nx:   nx,
		up:   make([]chan []float64, workers),
		down: make([]chan []float64, workers),
	}
	for i := 0; i < workers; i++ {
		r.up[i] = make(chan []float64, 1)
		r.down[i] = make(chan []float64, 1)
	}
	return r
}

// Exchanger is one worker's endpoint on the ring.
type Exchanger struct {
	ring  *Ring
	rank  int
	above int
	below int
}

// Exchanger returns the endpoint for worker rank with the given ring
// neighbors.
func (r *Ring) Exchanger(rank, below, above int) *Exchanger {
	return &Exchanger{ring: r, rank: rank, above: above, below: below}
}

// Exchange synchronizes g's two halo rows with the boundary rows of
// the ring neighbors. It sends both boundary rows first, then blocks
// until both neighbor rows arrive:
//
//   - the topmost owned row goes up, becoming the upper neighbor's
//     bottom halo
//   - the bottommost owned row goes down, becoming the lower
//     neighbor's top halo
//   - the bottom halo (row 0) is filled from the lower neighbor's top
//     row, the top halo (row BandRows+1) from the upper neighbor's
//     bottom row
//
// With a single worker both neighbors are the worker itself and the
// exchange degenerates to the periodic y wrap.
func (e *Exchanger) Exchange(g *lattice.Grid) {
	e.ring.up[e.rank] <- pack(g.Row(g.BandRows))
	e.ring.down[e.rank] <- pack(g.Row(1))

	copy(g.Row(0), <-e.ring.up[e.below])
	copy(g.Row(g.BandRows+1), <-e.ring.down[e.above])
}

func pack(row []float64) []float64 {
	buf := make([]float64, len(row))
	copy(buf, row)
	return buf
}
