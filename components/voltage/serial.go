package voltage

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

// SerialMeter reads the battery voltage from a power board which prints one
// reading per line, like "11.84".
type SerialMeter struct {
	rc io.ReadCloser

	mu   sync.Mutex
	val  float64
	err  error
	seen bool
}

// OpenSerial opens the power board on the given serial port.
func OpenSerial(portName string) (*SerialMeter, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              9600,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		InterCharacterTimeout: 100,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening %s", portName)
	}

	return NewSerialMeter(port), nil
}

func NewSerialMeter(rc io.ReadCloser) *SerialMeter {
	return &SerialMeter{rc: rc}
}

// Run reads lines until the port is closed. It's meant to be run in its own
// goroutine.
func (m *SerialMeter) Run() {
	s := bufio.NewScanner(m.rc)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		v, err := strconv.ParseFloat(line, 64)

		m.mu.Lock()
		if err != nil {
			m.err = errors.Wrapf(err, "bad reading %q", line)
		} else {
			m.val, m.err, m.seen = v, nil, true
		}
		m.mu.Unlock()
	}

	m.mu.Lock()
	m.err = errors.Wrap(s.Err(), "while reading power board")
	if m.err == nil {
		m.err = errors.New("power board closed")
	}
	m.mu.Unlock()
}

// Voltage returns the last good reading.
func (m *SerialMeter) Voltage() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return 0, m.err
	}

	if !m.seen {
		return 0, errors.New("no reading yet")
	}

	return m.val, nil
}

func (m *SerialMeter) Close() error {
	return m.rc.Close()
}
