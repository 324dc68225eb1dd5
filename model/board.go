package model

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/rules"
)

var (
	// ErrInvalidDimensions is returned for a board with a negative width or height
	ErrInvalidDimensions = errors.New("board dimensions must not be negative")
	// ErrEmptyBoard is returned when cells are requested on a board with no area
	ErrEmptyBoard = errors.New("cannot seed cells on a zero-sized board")
	// ErrNegativeCount is returned for a negative seed count
	ErrNegativeCount = errors.New("seed count must not be negative")
	// ErrSeedExceedsCapacity is returned when more cells are requested than the board holds
	ErrSeedExceedsCapacity = errors.New("seed count exceeds board capacity")
)

// Board holds the live cells of one generation on a fixed [0, width) x [0, height) domain.
// Cells absent from the set are dead.
type Board struct {
	width        int
	height       int
	neighborhood rules.Neighborhood
	cells        CoordSet
}

// NewBoard creates an empty board of the given size
func NewBoard(width, height int, neighborhood rules.Neighborhood) (*Board, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] %dx%d", width, height)
	}
	return &Board{
		width:        width,
		height:       height,
		neighborhood: neighborhood,
		cells:        make(CoordSet),
	}, nil
}

// GetWidth returns the width of the board
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the height of the board
func (b *Board) GetHeight() int {
	return b.height
}

// Neighborhood returns the neighbor policy used for counting
func (b *Board) Neighborhood() rules.Neighborhood {
	return b.neighborhood
}

// Capacity is the number of cells in the domain
func (b *Board) Capacity() int {
	return b.width * b.height
}

// InBounds reports whether c lies inside the board
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

// SeedRandom replaces the live cells with count distinct cells chosen uniformly at random.
// A nil rng uses a time-seeded source.
func (b *Board) SeedRandom(count int, rng *rand.Rand) error {
	switch {
	case count < 0:
		return errors.Wrapf(ErrNegativeCount, "[SeedRandom] count: %d", count)
	case count > 0 && b.Capacity() == 0:
		return errors.Wrapf(ErrEmptyBoard, "[SeedRandom] %dx%d board, count: %d", b.width, b.height, count)
	case count > b.Capacity():
		return errors.Wrapf(ErrSeedExceedsCapacity, "[SeedRandom] count %d > capacity %d", count, b.Capacity())
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b.cells.Clear()
	capacity := b.Capacity()

	// Dense requests draw from a permutation, sparse ones retry on collision
	if count*2 > capacity {
		for _, idx := range rng.Perm(capacity)[:count] {
			b.cells.Insert(Coord{X: idx % b.width, Y: idx / b.width})
		}
		return nil
	}
	for b.cells.Len() < count {
		b.cells.Insert(Coord{X: rng.Intn(b.width), Y: rng.Intn(b.height)})
	}
	return nil
}

// IsAlive reports whether c is live. Coordinates outside the board are dead.
func (b *Board) IsAlive(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cells.Contains(c)
}

// Neighbors returns the coordinates adjacent to c under the board's neighborhood.
// Edge cells yield coordinates outside the board.
func (b *Board) Neighbors(c Coord) []Coord {
	offsets := b.neighborhood.Offsets()
	out := make([]Coord, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, Coord{X: c.X + o.DX, Y: c.Y + o.DY})
	}
	return out
}

// LiveNeighbors counts the live cells adjacent to c
func (b *Board) LiveNeighbors(c Coord) (count int) {
	for _, o := range b.neighborhood.Offsets() {
		if b.IsAlive(Coord{X: c.X + o.DX, Y: c.Y + o.DY}) {
			count++
		}
	}
	return
}

// Replace installs next as the live set and returns the discarded one.
// The board takes ownership of next; coordinates outside the board are dropped.
func (b *Board) Replace(next CoordSet) CoordSet {
	if next == nil {
		next = make(CoordSet)
	}
	for c := range next {
		if !b.InBounds(c) {
			delete(next, c)
		}
	}
	prev := b.cells
	b.cells = next
	return prev
}

// CountLivingCells returns the number of live cells
func (b *Board) CountLivingCells() int {
	return b.cells.Len()
}

// Cells returns a copy of the live set
func (b *Board) Cells() CoordSet {
	return b.cells.Clone()
}
