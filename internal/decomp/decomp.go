// Package decomp splits the global grid into contiguous row bands, one
// per worker, and computes each band's ring neighbors under the
// periodic y boundary.
package decomp

import (
	"errors"
	"fmt"
)

// ErrUneven indicates the grid height does not divide evenly across
// the requested worker count.
var ErrUneven = errors.New("decomp: grid height not divisible by worker count")

// Band is one worker's share of the global grid: rows
// [Start, Start+Rows) plus the ring ranks owning the rows immediately
// below and above it.
type Band struct {
	Rank  int
	Start int
	Rows  int
	Below int // rank owning row Start-1 (wrapped)
	Above int // rank owning row Start+Rows (wrapped)
}

// Split partitions ny rows across workers bands. Band r owns rows
// [r*ny/workers, (r+1)*ny/workers); its ring predecessor and successor
// make the whole-domain y periodicity ordinary neighbor communication.
// ny must divide evenly by workers.
func Split(ny, workers int) ([]Band, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("decomp: worker count must be positive, got %d", workers)
	}
	if ny%workers != 0 {
		return nil, fmt.Errorf("%w: ny=%d workers=%d", ErrUneven, ny, workers)
	}
	rows := ny / workers
	bands := make([]Band, workers)
	for r := 0; r < workers; r++ {
		bands[r] = Band{
			Rank:  r,
			Start: r * rows,
			Rows:  rows,
			Below: (r - 1 + workers) % workers,
			Above: (r + 1) % workers,
		}
	}
	return bands, nil
}

// Owner returns the index of the band owning global row row.
func Owner(bands []Band, row int) int {
	return row / bands[0].Rows
}

// Fit returns the largest worker count not exceeding max that divides
// ny evenly. It always returns at least 1.
func Fit(ny, max int) int {
	if max > ny {
		max = ny
	}
	for w := max; w > 1; w-- {
		if ny%w == 0 {
			return w
		}
	}
	return 1
}
