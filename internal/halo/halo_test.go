package halo

import (
	"sync"
	"testing"

	"github.com/san-kum/latticeflow/internal/lattice"
)

// fill stamps every cell of a row with a recognizable value.
func fill(g *lattice.Grid, row int, val float64) {
	r := g.Row(row)
	for i := range r {
		r[i] = val
	}
}

func TestExchangeSingleWorker(t *testing.T) {
	ring := NewRing(1, 3)
	ex := ring.Exchanger(0, 0, 0)

	g := lattice.NewGrid(3, 4)
	fill(g, 1, 1.0) // bottom owned row
	fill(g, 4, 4.0) // top owned row

	ex.Exchange(g)

	// Periodic y wrap: the grid's own boundary rows appear in the
	// opposite halos.
	if g.Row(0)[0] != 4.0 {
		t.Errorf("bottom halo = %g, want top owned row value 4.0", g.Row(0)[0])
	}
	if g.Row(5)[0] != 1.0 {
		t.Errorf("top halo = %g, want bottom owned row value 1.0", g.Row(5)[0])
	}
}

func TestExchangeTwoWorkers(t *testing.T) {
	const nx = 2
	ring := NewRing(2, nx)

	g0 := lattice.NewGrid(nx, 3) // rows 0..2 globally
	g1 := lattice.NewGrid(nx, 3) // rows 3..5 globally
	fill(g0, 1, 10.0)
	fill(g0, 3, 13.0)
	fill(g1, 1, 21.0)
	fill(g1, 3, 23.0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		ring.Exchanger(0, 1, 1).Exchange(g0)
	}()
	go func() {
		defer wg.Done()
		ring.Exchanger(1, 0, 0).Exchange(g1)
	}()
	wg.Wait()

	// Worker 0's top halo holds worker 1's bottom owned row and its
	// bottom halo wraps to worker 1's top owned row.
	if got := g0.Row(4)[0]; got != 21.0 {
		t.Errorf("g0 top halo = %g, want 21.0", got)
	}
	if got := g0.Row(0)[0]; got != 23.0 {
		t.Errorf("g0 bottom halo = %g, want 23.0", got)
	}
	if got := g1.Row(4)[0]; got != 10.0 {
		t.Errorf("g1 top halo = %g, want 10.0", got)
	}
	if got := g1.Row(0)[0]; got != 13.0 {
		t.Errorf("g1 bottom halo = %g, want 13.0", got)
	}
}

func TestExchangeCopiesRows(t *testing.T) {
	ring := NewRing(1, 2)
	ex := ring.Exchanger(0, 0, 0)

	g := lattice.NewGrid(2, 2)
	fill(g, 1, 5.0)
	fill(g, 2, 6.0)
	ex.Exchange(g)

	// Mutating the boundary row after the exchange must not leak into
	// the halo copy.
	fill(g, 2, 99.0)
	if g.Row(0)[0] != 6.0 {
		t.Errorf("halo row aliases the source row: got %g, want 6.0", g.Row(0)[0])
	}
}

func TestExchangeManyWorkersCompletes(t *testing.T) {
	const workers = 8
	ring := NewRing(workers, 4)

	grids := make([]*lattice.Grid, workers)
	for i := range grids {
		grids[i] = lattice.NewGrid(4, 2)
		fill(grids[i], 1, float64(i*10+1))
		fill(grids[i], 2, float64(i*10+2))
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			below := (i - 1 + workers) % workers
			above := (i + 1) % workers
			ring.Exchanger(i, below, above).Exchange(grids[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		below := (i - 1 + workers) % workers
		above := (i + 1) % workers
		if got, want := grids[i].Row(0)[0], float64(below*10+2); got != want {
			t.Errorf("worker %d bottom halo = %g, want %g", i, got, want)
		}
		if got, want := grids[i].Row(3)[0], float64(above*10+1); got != want {
			t.Errorf("worker %d top halo = %g, want %g", i, got, want)
		}
	}
}
