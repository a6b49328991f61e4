package lattice

// Grid holds the distribution-function state for one worker's band of
// rows. Storage is a flat row-major float64 slice with stride Q per
// cell: local row 0 is the bottom halo, rows 1..BandRows are owned,
// and row BandRows+1 is the top halo. Column indices are periodic in x
// but wrapping is resolved by callers before addressing.
type Grid struct {
	NX       int // columns
	BandRows int // owned rows, excluding the two halo rows

	speeds []float64
}

// NewGrid allocates a band grid of bandRows owned rows plus two halo
// rows, with every cell zeroed.
func NewGrid(nx, bandRows int) *Grid {
	return &Grid{
		NX:       nx,
		BandRows: bandRows,
		speeds:   make([]float64, (bandRows+2)*nx*Q),
	}
}

// NewEquilibriumGrid allocates a band grid with every owned cell set
// to the uniform equilibrium distribution for the reference density:
// weight 4/9 at rest, 1/9 along the axes, 1/36 on the diagonals. Halo
// rows are left zeroed until the first exchange fills them.
func NewEquilibriumGrid(nx, bandRows int, density float64) *Grid {
	g := NewGrid(nx, bandRows)
	w0 := density * WRest
	w1 := density * WAxis
	w2 := density * WDiagonal
	for r := 1; r <= bandRows; r++ {
		for c := 0; c < nx; c++ {
			cell := g.Cell(r, c)
			cell[Rest] = w0
			cell[East] = w1
			cell[North] = w1
			cell[West] = w1
			cell[South] = w1
			cell[NorthEast] = w2
			cell[NorthWest] = w2
			cell[SouthWest] = w2
			cell[SouthEast] = w2
		}
	}
	return g
}

// Cell returns the Q distribution values of the cell at local row r,
// column c as a slice sharing the grid's backing store.
func (g *Grid) Cell(r, c int) []float64 {
	base := (c + r*g.NX) * Q
	return g.speeds[base : base+Q : base+Q]
}

// Row returns the contiguous values of local row r, Q per cell.
func (g *Grid) Row(r int) []float64 {
	base := r * g.NX * Q
	return g.speeds[base : base+g.NX*Q : base+g.NX*Q]
}

// Owned returns the contiguous values of all owned rows, excluding
// both halo rows.
func (g *Grid) Owned() []float64 {
	return g.speeds[g.NX*Q : (g.BandRows+1)*g.NX*Q]
}

// East and West wrap a column index one step in x, respecting the
// periodic boundary.
func (g *Grid) East(c int) int {
	return (c + 1) % g.NX
}

func (g *Grid) West(c int) int {
	if c == 0 {
		return g.NX - 1
	}
	return c - 1
}
