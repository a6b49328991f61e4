// Package export writes and reads the simulator's result artifacts:
// the per-cell final state and the per-iteration average-velocity
// trace, in the classic whitespace-separated .dat formats.
package export

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/latticeflow/internal/sim"
)

// WriteFinalState writes one record per cell:
//
//	x y u_x u_y speed pressure blocked
//
// with floats rendered in scientific notation and blocked as 0/1.
func WriteFinalState(path string, field []sim.FieldCell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating final state file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, fc := range field {
		blocked := 0
		if fc.Blocked {
			blocked = 1
		}
		fmt.Fprintf(w, "%d %d %.12E %.12E %.12E %.12E %d\n",
			fc.X, fc.Y, fc.UX, fc.UY, fc.Speed, fc.Pressure, blocked)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: writing final state: %w", err)
	}
	return nil
}

// WriteAvVels writes the average-velocity trace, one indexed entry per
// iteration.
func WriteAvVels(path string, trace []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating trace file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, v := range trace {
		fmt.Fprintf(w, "%d:\t%.12E\n", i, v)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("export: writing trace: %w", err)
	}
	return nil
}

// ReadAvVels loads a trace previously written by WriteAvVels.
func ReadAvVels(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: opening trace file: %w", err)
	}
	defer f.Close()

	var trace []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("export: trace line %d: expected 2 fields, got %d", line, len(fields))
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("export: trace line %d: %w", line, err)
		}
		trace = append(trace, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("export: reading trace: %w", err)
	}
	return trace, nil
}
