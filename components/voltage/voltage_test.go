package voltage

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paudar/hulk"
	fake "github.com/paudar/hulk/fake/voltage"
)

func TestLowVoltageShutsDown(t *testing.T) {
	type eg struct {
		voltage  float64
		shutdown bool
	}

	examples := []eg{
		{12.6, false},
		{10.6, false},
		{10.4, true},
	}

	for i, x := range examples {
		vc := New(fake.New(x.voltage))
		state := &hulk.State{}

		assert.NoError(t, vc.Tick(time.Now(), state))
		assert.Equal(t, x.shutdown, state.Shutdown, "example %d", i)
	}
}

func TestChecksEveryInterval(t *testing.T) {
	v := fake.New(12)
	vc := New(v)
	state := &hulk.State{}
	now := time.Now()

	vc.Tick(now, state)

	v.Set(9)
	vc.Tick(now.Add(time.Second), state)
	assert.False(t, state.Shutdown)

	vc.Tick(now.Add(interval+time.Second), state)
	assert.True(t, state.Shutdown)
}

func TestSerialMeter(t *testing.T) {
	m := NewSerialMeter(io.NopCloser(strings.NewReader("11.8\n\n11.5\n")))

	_, err := m.Voltage()
	assert.Error(t, err)

	m.Run()

	// the port ran dry
	_, err = m.Voltage()
	assert.Error(t, err)
}

func TestSerialMeterReadings(t *testing.T) {
	r, w := io.Pipe()
	m := NewSerialMeter(r)
	done := make(chan struct{})

	go func() {
		m.Run()
		close(done)
	}()

	io.WriteString(w, "11.8\n11.5\n")
	io.WriteString(w, "\n")

	assert.Eventually(t, func() bool {
		v, err := m.Voltage()
		return err == nil && v == 11.5
	}, time.Second, time.Millisecond)

	w.Close()
	<-done
}
