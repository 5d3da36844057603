package servo

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "fake/servo",
})

// FakeServos is a bus of servos which reach every commanded position
// instantly. It records what was written, for tests and the simulator.
type FakeServos struct {
	mu        sync.Mutex
	positions map[int]int
	enabled   bool
	writes    int

	// Currents (A) reported for each servo ID.
	currents map[int]float64
}

func New() *FakeServos {
	return &FakeServos{
		positions: map[int]int{},
		currents:  map[int]float64{},
	}
}

func (s *FakeServos) Enable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debugf("enable")
	s.enabled = true
	return nil
}

func (s *FakeServos) Disable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debugf("disable")
	s.enabled = false
	return nil
}

func (s *FakeServos) Read(ctx context.Context) (map[int]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]int, len(s.positions))
	for id, v := range s.positions {
		out[id] = v
	}

	return out, nil
}

func (s *FakeServos) Write(ctx context.Context, positions map[int]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger.Debugf("write: %v", positions)

	for id, v := range positions {
		s.positions[id] = v
	}

	s.writes++
	return nil
}

// Enabled returns true if the torque is on.
func (s *FakeServos) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Writes returns the number of writes so far.
func (s *FakeServos) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Position returns the last position written to the given servo.
func (s *FakeServos) Position(id int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.positions[id]
	return v, ok
}

func (s *FakeServos) SetCurrent(id int, amps float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currents[id] = amps
}

func (s *FakeServos) Currents(ctx context.Context) (map[int]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]float64, len(s.currents))
	for id, v := range s.currents {
		out[id] = v
	}

	return out, nil
}
