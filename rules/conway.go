package rules

import (
	"strings"

	"github.com/pkg/errors"
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Offset is a relative step from a cell to one of its neighbors
type Offset struct {
	DX, DY int
}

// Neighborhood selects which surrounding cells count as neighbors
type Neighborhood int

const (
	// Moore counts all 8 surrounding cells
	Moore Neighborhood = iota
	// VonNeumann counts only the 4 orthogonal cells
	VonNeumann
)

var (
	mooreOffsets = []Offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	vonNeumannOffsets = []Offset{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	}
)

// ErrUnknownNeighborhood is returned when a neighborhood name cannot be parsed
var ErrUnknownNeighborhood = errors.New("unknown neighborhood")

// Offsets returns the relative neighbor positions. The slice must not be modified.
func (n Neighborhood) Offsets() []Offset {
	if n == VonNeumann {
		return vonNeumannOffsets
	}
	return mooreOffsets
}

func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case VonNeumann:
		return "von-neumann"
	default:
		return "unknown"
	}
}

// ParseNeighborhood maps a config or flag value onto a Neighborhood
func ParseNeighborhood(name string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "moore", "8":
		return Moore, nil
	case "von-neumann", "vonneumann", "von_neumann", "4":
		return VonNeumann, nil
	}
	return Moore, errors.Wrapf(ErrUnknownNeighborhood, "[ParseNeighborhood] %q", name)
}
