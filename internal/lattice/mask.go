package lattice

// Mask is a per-cell obstacle map, true meaning solid. It is immutable
// once built; Set is only used during loading.
type Mask struct {
	NX, NY  int
	blocked []bool
}

// NewMask returns an all-clear mask of ny rows by nx columns.
func NewMask(nx, ny int) *Mask {
	return &Mask{NX: nx, NY: ny, blocked: make([]bool, nx*ny)}
}

// Set marks the cell at row r, column c as solid.
func (m *Mask) Set(r, c int) {
	m.blocked[c+r*m.NX] = true
}

// Blocked reports whether the cell at row r, column c is solid.
func (m *Mask) Blocked(r, c int) bool {
	return m.blocked[c+r*m.NX]
}

// Open returns the number of unobstructed cells.
func (m *Mask) Open() int {
	n := 0
	for _, b := range m.blocked {
		if !b {
			n++
		}
	}
	return n
}

// Band returns a copy of the mask restricted to rows
// [start, start+rows). Workers never need mask values for their halo
// rows, so the band carries owned rows only.
func (m *Mask) Band(start, rows int) *Mask {
	b := NewMask(m.NX, rows)
	copy(b.blocked, m.blocked[start*m.NX:(start+rows)*m.NX])
	return b
}
