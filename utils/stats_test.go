package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats(10)
	if s.FinalPopulation != 10 || s.StagnantSince != -1 {
		t.Fatalf("NewStats = %+v", s)
	}

	s.Update(1, 20, 10*time.Millisecond)
	if s.AveragePopulation != 20 {
		t.Errorf("AveragePopulation = %v, want 20", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 100 {
		t.Errorf("GenerationsPerSecond = %v, want 100", s.GenerationsPerSecond)
	}

	s.Update(2, 30, 0)
	if s.AveragePopulation != 21 {
		t.Errorf("AveragePopulation = %v, want 21", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.FinalPopulation != 30 {
		t.Errorf("TotalGenerations = %d, FinalPopulation = %d", s.TotalGenerations, s.FinalPopulation)
	}
}

func TestStatsMarkStagnant(t *testing.T) {
	s := NewStats(0)
	if !s.MarkStagnant(4) {
		t.Error("first MarkStagnant returned false")
	}
	if s.MarkStagnant(9) {
		t.Error("second MarkStagnant returned true")
	}
	if s.StagnantSince != 4 {
		t.Errorf("StagnantSince = %d, want 4", s.StagnantSince)
	}
}

func TestStatsSummary(t *testing.T) {
	s := NewStats(12)
	s.Update(1, 7, time.Millisecond)
	want := "Initial alive cells were: 12 and final alive cells are: 7"
	if got := s.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
