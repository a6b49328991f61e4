package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/latticeflow/internal/lattice"
)

// LoadObstacles reads an obstacle file of newline-delimited records
// "x y blocked" into a mask for an nx by ny grid. Coordinates must lie
// inside the grid and blocked must equal 1; unlisted cells stay open.
func LoadObstacles(path string, nx, ny int) (*lattice.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading obstacle file: %w", err)
	}
	defer f.Close()
	return ReadObstacles(f, nx, ny)
}

// ReadObstacles parses obstacle records from r. See LoadObstacles.
func ReadObstacles(r io.Reader, nx, ny int) (*lattice.Mask, error) {
	mask := lattice.NewMask(nx, ny)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 values, got %d", ErrObstacleRecord, line, len(fields))
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrObstacleRecord, line, err)
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrObstacleRecord, line, err)
		}
		blocked, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrObstacleRecord, line, err)
		}
		if x < 0 || x >= nx {
			return nil, fmt.Errorf("%w: line %d: x=%d outside [0,%d)", ErrObstacleRange, line, x, nx)
		}
		if y < 0 || y >= ny {
			return nil, fmt.Errorf("%w: line %d: y=%d outside [0,%d)", ErrObstacleRange, line, y, ny)
		}
		if blocked != 1 {
			return nil, fmt.Errorf("%w: line %d: blocked flag must be 1, got %d", ErrObstacleRecord, line, blocked)
		}
		mask.Set(y, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: reading obstacle file: %w", err)
	}
	return mask, nil
}
