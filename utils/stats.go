package utils

import "time"

const historySize = 5

const (
	StateActive      = "active"
	StateStable      = "stable"
	StateOscillating = "oscillating"
	StateExtinct     = "extinct"
)

// Stats tracks the progress of a simulation
type Stats struct {
	TotalGenerations  int
	LiveCells         int
	AveragePopulation float64
	Edits             int
	StartTime         time.Time

	history []string // Store recent grid hashes for cycle detection
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records a freshly evolved generation
func (s *Stats) Observe(generation, population int, hash string) {
	s.TotalGenerations = generation
	s.LiveCells = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// Touch records an edit to the live grid. Earlier hashes no longer describe
// a run of generations, so the history starts over from this state.
func (s *Stats) Touch(population int, hash string) {
	s.Edits++
	s.LiveCells = population
	s.history = []string{hash}
}

func (s *Stats) Generation() int {
	return s.TotalGenerations
}

func (s *Stats) Population() int {
	return s.LiveCells
}

// State classifies the recent history as extinct, stable, oscillating or active
func (s *Stats) State() string {
	if s.LiveCells == 0 {
		return StateExtinct
	}
	n := len(s.history)
	if n < 2 {
		return StateActive
	}
	current := s.history[n-1]
	if s.history[n-2] == current {
		return StateStable
	}
	for i := n - 3; i >= 0 && i >= n-4; i-- {
		if s.history[i] == current {
			return StateOscillating
		}
	}
	return StateActive
}
