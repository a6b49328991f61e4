package lattice

// Q is the number of discrete velocities per cell.
const Q = 9

// Direction indices into a cell's distribution values.
const (
	Rest = iota
	East
	North
	West
	South
	NorthEast
	NorthWest
	SouthWest
	SouthEast
)

// Lattice weights by direction class.
const (
	WRest     = 4.0 / 9.0
	WAxis     = 1.0 / 9.0
	WDiagonal = 1.0 / 36.0
)

// CSq is the square of the lattice speed of sound.
const CSq = 1.0 / 3.0

// opposite[i] is the direction that reverses direction i.
var opposite = [Q]int{Rest, West, South, East, North, SouthWest, SouthEast, NorthEast, NorthWest}

// Opposite returns the reverse of direction dir.
func Opposite(dir int) int { return opposite[dir] }

// Density returns the local mass density of a cell, the sum of its
// nine distribution values.
func Density(cell []float64) float64 {
	var rho float64
	for k := 0; k < Q; k++ {
		rho += cell[k]
	}
	return rho
}

// Velocity returns the macroscopic velocity components of a cell.
// The caller must guarantee the cell has nonzero density.
func Velocity(cell []float64) (ux, uy float64) {
	rho := Density(cell)
	ux = (cell[East] + cell[NorthEast] + cell[SouthEast] -
		(cell[West] + cell[NorthWest] + cell[SouthWest])) / rho
	uy = (cell[North] + cell[NorthEast] + cell[NorthWest] -
		(cell[South] + cell[SouthWest] + cell[SouthEast])) / rho
	return ux, uy
}

// Equilibrium fills eq with the equilibrium distribution for local
// density rho and velocity (ux, uy), using the standard second-order
// expansion in velocity.
func Equilibrium(rho, ux, uy float64, eq *[Q]float64) {
	uSq := ux*ux + uy*uy

	// Velocity projected onto each moving direction's lattice vector.
	var u [Q]float64
	u[East] = ux
	u[North] = uy
	u[West] = -ux
	u[South] = -uy
	u[NorthEast] = ux + uy
	u[NorthWest] = -ux + uy
	u[SouthWest] = -ux - uy
	u[SouthEast] = ux - uy

	eq[Rest] = WRest * rho * (1.0 - uSq/(2.0*CSq))
	for k := East; k <= South; k++ {
		eq[k] = WAxis * rho * (1.0 + u[k]/CSq + (u[k]*u[k])/(2.0*CSq*CSq) - uSq/(2.0*CSq))
	}
	for k := NorthEast; k <= SouthEast; k++ {
		eq[k] = WDiagonal * rho * (1.0 + u[k]/CSq + (u[k]*u[k])/(2.0*CSq*CSq) - uSq/(2.0*CSq))
	}
}
