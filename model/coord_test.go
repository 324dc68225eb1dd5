package model

import (
	"reflect"
	"testing"
)

func TestCoordSet(t *testing.T) {
	s := NewCoordSet(Coord{1, 1}, Coord{1, 1}, Coord{0, 2})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(Coord{0, 2}) || s.Contains(Coord{2, 0}) {
		t.Error("Contains reports wrong membership")
	}

	clone := s.Clone()
	clone.Insert(Coord{5, 5})
	if s.Contains(Coord{5, 5}) {
		t.Error("Clone shares storage with the original")
	}
	if s.Equal(clone) {
		t.Error("Equal ignores an extra coordinate")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", s.Len())
	}
}

func TestCoordSetSorted(t *testing.T) {
	s := NewCoordSet(Coord{2, 1}, Coord{0, 1}, Coord{5, 0})
	want := []Coord{{5, 0}, {0, 1}, {2, 1}}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestSetPoolReturnsEmptySets(t *testing.T) {
	pool := NewSetPool()
	set := pool.Get()
	set.Insert(Coord{1, 1})
	SetToPool(set, pool)

	if got := pool.Get(); got.Len() != 0 {
		t.Errorf("pooled set has %d entries, want 0", got.Len())
	}

	// nil pool is a no-op
	SetToPool(NewCoordSet(Coord{1, 1}), nil)
}
