package voltage

import (
	"sync"
)

// FakeVoltage is a battery which reads whatever it was last set to.
type FakeVoltage struct {
	mu      sync.Mutex
	voltage float64
}

func New(voltage float64) *FakeVoltage {
	return &FakeVoltage{voltage: voltage}
}

func (s *FakeVoltage) Voltage() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voltage, nil
}

// Set changes the reading, e.g. to drain the battery in the simulator.
func (s *FakeVoltage) Set(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voltage = v
}
