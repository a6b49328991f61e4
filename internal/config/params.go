package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Domain errors for input loading.
var (
	// ErrParamCount indicates a parameter file with too few fields.
	ErrParamCount = errors.New("config: parameter file must hold 7 values")

	// ErrParamRange indicates a parameter outside its valid range.
	ErrParamRange = errors.New("config: parameter out of valid range")

	// ErrObstacleRecord indicates a malformed obstacle file line.
	ErrObstacleRecord = errors.New("config: malformed obstacle record")

	// ErrObstacleRange indicates an obstacle coordinate outside the grid.
	ErrObstacleRange = errors.New("config: obstacle coordinate out of range")
)

// Params holds the physical and numerical parameters of a run, read
// from the classic 7-value parameter file.
type Params struct {
	NX          int     // cells in x
	NY          int     // cells in y
	MaxIters    int     // timesteps to run
	ReynoldsDim int     // reference dimension for the Reynolds number
	Density     float64 // reference density per cell
	Accel       float64 // inlet acceleration magnitude
	Omega       float64 // BGK relaxation coefficient
}

// LoadParams reads a parameter file of 7 whitespace-separated scalars
// in fixed order: nx ny maxIters reynoldsDim density accel omega.
// Any missing or malformed field is an error, as is a parameter set
// that cannot produce a stable run.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading parameter file: %w", err)
	}
	return ParseParams(string(data))
}

// ParseParams parses parameter file contents. See LoadParams.
func ParseParams(s string) (*Params, error) {
	fields := strings.Fields(s)
	if len(fields) < 7 {
		return nil, fmt.Errorf("%w, got %d", ErrParamCount, len(fields))
	}

	names := []string{"nx", "ny", "maxIters", "reynoldsDim", "density", "accel", "omega"}
	ints := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", names[i], err)
		}
		ints[i] = v
	}
	flts := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i+4], 64)
		if err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", names[i+4], err)
		}
		flts[i] = v
	}

	p := &Params{
		NX:          ints[0],
		NY:          ints[1],
		MaxIters:    ints[2],
		ReynoldsDim: ints[3],
		Density:     flts[0],
		Accel:       flts[1],
		Omega:       flts[2],
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the parameter set for physical plausibility. The
// relaxation coefficient must lie in (0, 2) for the derived lattice
// viscosity to stay positive.
func (p *Params) Validate() error {
	switch {
	case p.NX <= 0 || p.NY <= 0:
		return fmt.Errorf("%w: grid dimensions %dx%d", ErrParamRange, p.NX, p.NY)
	case p.MaxIters <= 0:
		return fmt.Errorf("%w: maxIters %d", ErrParamRange, p.MaxIters)
	case p.ReynoldsDim <= 0:
		return fmt.Errorf("%w: reynoldsDim %d", ErrParamRange, p.ReynoldsDim)
	case p.Density <= 0:
		return fmt.Errorf("%w: density %g", ErrParamRange, p.Density)
	case p.Accel < 0:
		return fmt.Errorf("%w: accel %g", ErrParamRange, p.Accel)
	case p.Omega <= 0 || p.Omega >= 2:
		return fmt.Errorf("%w: omega %g not in (0, 2)", ErrParamRange, p.Omega)
	}
	return nil
}
