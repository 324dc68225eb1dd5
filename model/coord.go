package model

import (
	"fmt"
	"sort"
)

// Coord identifies a single cell. Signed so neighbors of edge cells can be represented.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CoordSet is an unordered set of coordinates
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set holding the given coordinates
func NewCoordSet(coords ...Coord) CoordSet {
	set := make(CoordSet, len(coords))
	for _, c := range coords {
		set.Insert(c)
	}
	return set
}

func (s CoordSet) Insert(c Coord) {
	s[c] = struct{}{}
}

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Len() int {
	return len(s)
}

// Clear empties the set, keeping its allocated buckets
func (s CoordSet) Clear() {
	clear(s)
}

// Clone returns an independent copy
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same coordinates
func (s CoordSet) Equal(other CoordSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the coordinates ordered by row, then column
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
