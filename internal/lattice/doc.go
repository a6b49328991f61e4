// Package lattice provides the D2Q9 lattice primitives for the flow
// simulator:
//
//   - [Grid]: a worker's band of distribution-function state, stored
//     row-major with one halo row above and one below
//   - [Mask]: immutable per-cell obstacle map
//   - direction constants, lattice weights and the second-order
//     equilibrium expansion
//
// The nine discrete velocities are numbered
//
//	NW N NE      6 2 5
//	  \|/         \|/
//	 W-R-E       3-0-1
//	  /|\         /|\
//	SW S SE      7 4 8
//
// so that Opposite(i) pairs each moving direction with its reverse.
//
// # Thread Safety
//
// A Grid is owned by exactly one worker and is not safe for concurrent
// mutation. A Mask is immutable after construction and may be shared.
package lattice
