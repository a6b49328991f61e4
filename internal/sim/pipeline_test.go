package sim

import (
	"math"
	"testing"

	"github.com/san-kum/latticeflow/internal/lattice"
)

func TestStreamColumnWrap(t *testing.T) {
	const nx = 4
	cells := lattice.NewGrid(nx, 1)
	scratch := lattice.NewGrid(nx, 1)

	// An eastward component on the last column must reappear on
	// column 0 after one step.
	cells.Cell(1, nx-1)[lattice.East] = 0.7
	stream(cells, scratch)

	if got := scratch.Cell(1, 0)[lattice.East]; got != 0.7 {
		t.Errorf("east component at column 0 = %g, want 0.7", got)
	}
	if got := scratch.Cell(1, nx-1)[lattice.East]; got != 0 {
		t.Errorf("east component should have left column %d, got %g", nx-1, got)
	}
}

func TestStreamReadsHaloRows(t *testing.T) {
	cells := lattice.NewGrid(3, 2)
	scratch := lattice.NewGrid(3, 2)

	// Northward mass in the bottom halo enters the first owned row;
	// southward mass in the top halo enters the last owned row.
	cells.Cell(0, 1)[lattice.North] = 0.2
	cells.Cell(3, 1)[lattice.South] = 0.3
	stream(cells, scratch)

	if got := scratch.Cell(1, 1)[lattice.North]; got != 0.2 {
		t.Errorf("north from bottom halo = %g, want 0.2", got)
	}
	if got := scratch.Cell(2, 1)[lattice.South]; got != 0.3 {
		t.Errorf("south from top halo = %g, want 0.3", got)
	}
}

func TestStreamDiagonals(t *testing.T) {
	cells := lattice.NewGrid(3, 3)
	scratch := lattice.NewGrid(3, 3)

	// A north-east component travels one step up and one step east.
	cells.Cell(1, 0)[lattice.NorthEast] = 0.5
	// A south-west component travels one step down and one step west,
	// wrapping in x.
	cells.Cell(2, 0)[lattice.SouthWest] = 0.6
	stream(cells, scratch)

	if got := scratch.Cell(2, 1)[lattice.NorthEast]; got != 0.5 {
		t.Errorf("north-east landed at %g, want 0.5", got)
	}
	if got := scratch.Cell(1, 2)[lattice.SouthWest]; got != 0.6 {
		t.Errorf("south-west landed at %g, want 0.6", got)
	}
}

func TestStreamIgnoresObstacles(t *testing.T) {
	// Streaming runs uniformly over solid cells; rebound corrects them
	// afterwards. A component must pass into a solid cell's scratch.
	cells := lattice.NewGrid(2, 1)
	scratch := lattice.NewGrid(2, 1)
	cells.Cell(1, 0)[lattice.East] = 0.9
	stream(cells, scratch)
	if got := scratch.Cell(1, 1)[lattice.East]; got != 0.9 {
		t.Errorf("streaming into solid cell = %g, want 0.9", got)
	}
}

func TestReboundSwapsPairs(t *testing.T) {
	cells := lattice.NewGrid(1, 1)
	scratch := lattice.NewGrid(1, 1)
	mask := lattice.NewMask(1, 1)
	mask.Set(0, 0)

	src := scratch.Cell(1, 0)
	for k := 0; k < lattice.Q; k++ {
		src[k] = float64(k)
	}
	cells.Cell(1, 0)[lattice.Rest] = 42.0

	rebound(cells, scratch, mask)

	dst := cells.Cell(1, 0)
	for k := lattice.East; k < lattice.Q; k++ {
		if want := float64(lattice.Opposite(k)); dst[k] != want {
			t.Errorf("component %d = %g, want %g", k, dst[k], want)
		}
	}
	// The rest component is untouched by bounce-back.
	if dst[lattice.Rest] != 42.0 {
		t.Errorf("rest component = %g, want 42.0", dst[lattice.Rest])
	}
}

func TestReboundSkipsOpenCells(t *testing.T) {
	cells := lattice.NewGrid(2, 1)
	scratch := lattice.NewGrid(2, 1)
	mask := lattice.NewMask(2, 1)
	mask.Set(0, 1)

	scratch.Cell(1, 0)[lattice.East] = 1.0
	cells.Cell(1, 0)[lattice.West] = 2.0
	rebound(cells, scratch, mask)

	if got := cells.Cell(1, 0)[lattice.West]; got != 2.0 {
		t.Errorf("open cell modified by rebound: %g", got)
	}
}

func TestCollideEquilibriumFixedPoint(t *testing.T) {
	for _, omega := range []float64{0.5, 1.0, 1.5, 1.9} {
		cells := lattice.NewGrid(1, 1)
		scratch := lattice.NewGrid(1, 1)
		mask := lattice.NewMask(1, 1)

		var eq [lattice.Q]float64
		lattice.Equilibrium(1.1, 0.05, -0.02, &eq)
		copy(scratch.Cell(1, 0), eq[:])

		collide(cells, scratch, mask, omega)

		dst := cells.Cell(1, 0)
		for k := 0; k < lattice.Q; k++ {
			if math.Abs(dst[k]-eq[k]) > 1e-12 {
				t.Errorf("omega=%g component %d moved from equilibrium: %g vs %g", omega, k, dst[k], eq[k])
			}
		}
	}
}

func TestCollideRelaxesTowardEquilibrium(t *testing.T) {
	cells := lattice.NewGrid(1, 1)
	scratch := lattice.NewGrid(1, 1)
	mask := lattice.NewMask(1, 1)

	// A non-equilibrium distribution with known density and momentum.
	src := scratch.Cell(1, 0)
	src[lattice.Rest] = 0.2
	src[lattice.East] = 0.5
	src[lattice.West] = 0.3

	rho := lattice.Density(src)
	ux, uy := lattice.Velocity(src)
	var eq [lattice.Q]float64
	lattice.Equilibrium(rho, ux, uy, &eq)

	const omega = 0.7
	want := make([]float64, lattice.Q)
	for k := 0; k < lattice.Q; k++ {
		want[k] = src[k] + omega*(eq[k]-src[k])
	}

	collide(cells, scratch, mask, omega)

	dst := cells.Cell(1, 0)
	for k := 0; k < lattice.Q; k++ {
		if math.Abs(dst[k]-want[k]) > 1e-15 {
			t.Errorf("component %d = %g, want %g", k, dst[k], want[k])
		}
	}
}

func TestInjectFlow(t *testing.T) {
	const density, accel = 1.0, 0.9
	w1 := density * accel / 9.0
	w2 := density * accel / 36.0

	cells := lattice.NewEquilibriumGrid(2, 1, density)
	mask := lattice.NewMask(2, 1)
	before := append([]float64(nil), cells.Cell(1, 0)...)

	injectFlow(cells, mask, 1, density, accel)

	cell := cells.Cell(1, 0)
	if math.Abs(cell[lattice.East]-(before[lattice.East]+w1)) > 1e-15 {
		t.Errorf("east not incremented: %g", cell[lattice.East])
	}
	if math.Abs(cell[lattice.West]-(before[lattice.West]-w1)) > 1e-15 {
		t.Errorf("west not decremented: %g", cell[lattice.West])
	}
	if math.Abs(cell[lattice.NorthEast]-(before[lattice.NorthEast]+w2)) > 1e-15 {
		t.Errorf("north-east not incremented: %g", cell[lattice.NorthEast])
	}
	if math.Abs(cell[lattice.SouthWest]-(before[lattice.SouthWest]-w2)) > 1e-15 {
		t.Errorf("south-west not decremented: %g", cell[lattice.SouthWest])
	}

	// The injection is mass-neutral.
	if math.Abs(lattice.Density(cell)-density) > 1e-12 {
		t.Errorf("density changed by injection: %g", lattice.Density(cell))
	}
}

func TestInjectFlowSkipsNegativeDensity(t *testing.T) {
	// West-pointing components too small to give up the increment: the
	// cell must be left untouched rather than driven negative.
	cells := lattice.NewGrid(1, 1)
	mask := lattice.NewMask(1, 1)
	cell := cells.Cell(1, 0)
	cell[lattice.East] = 0.5
	cell[lattice.West] = 1e-6

	before := append([]float64(nil), cell...)
	injectFlow(cells, mask, 1, 1.0, 0.9)

	for k := 0; k < lattice.Q; k++ {
		if cell[k] != before[k] {
			t.Fatalf("guarded cell modified at component %d", k)
		}
	}
}

func TestInjectFlowSkipsObstacles(t *testing.T) {
	cells := lattice.NewEquilibriumGrid(2, 1, 1.0)
	mask := lattice.NewMask(2, 1)
	mask.Set(0, 1)

	before := append([]float64(nil), cells.Cell(1, 1)...)
	injectFlow(cells, mask, 1, 1.0, 0.9)

	cell := cells.Cell(1, 1)
	for k := 0; k < lattice.Q; k++ {
		if cell[k] != before[k] {
			t.Fatalf("solid cell modified at component %d", k)
		}
	}
	// The open cell beside it is still accelerated.
	if cells.Cell(1, 0)[lattice.East] <= before[lattice.East] {
		t.Error("open cell not accelerated")
	}
}
