package utils

import (
	"fmt"
	"time"
)

// Stats for the run summary and performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	InitialPopulation    int
	FinalPopulation      int
	TotalGenerations     int
	StagnantSince        int // first generation repeating a recent one, -1 if none
	StartTime            time.Time
}

func NewStats(initialPopulation int) *Stats {
	return &Stats{
		InitialPopulation: initialPopulation,
		FinalPopulation:   initialPopulation,
		StagnantSince:     -1,
		StartTime:         time.Now(),
	}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.FinalPopulation = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// MarkStagnant records the first generation found repeating
func (s *Stats) MarkStagnant(generation int) bool {
	if s.StagnantSince >= 0 {
		return false
	}
	s.StagnantSince = generation
	return true
}

// Summary is the line printed once a run completes
func (s *Stats) Summary() string {
	return fmt.Sprintf("Initial alive cells were: %d and final alive cells are: %d",
		s.InitialPopulation, s.FinalPopulation)
}
