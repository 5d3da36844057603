package servos

import (
	"context"

	"github.com/hipsterbrown/feetech-servo/feetech"
	"github.com/pkg/errors"
)

// Feetech drives STS servos over a serial bus.
type Feetech struct {
	bus   *feetech.Bus
	group *feetech.ServoGroup
}

// OpenFeetech opens the serial bus and groups the servos of the mapping.
func OpenFeetech(port string, m Mapping) (*Feetech, error) {
	bus, err := feetech.NewBus(feetech.BusConfig{
		Port:     port,
		BaudRate: 1_000_000,
		Protocol: feetech.ProtocolSTS,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "while opening bus on %s", port)
	}

	return &Feetech{
		bus:   bus,
		group: feetech.NewServoGroupByIDs(bus, m.IDs()...),
	}, nil
}

// Ping checks that every one of the given servos answers.
func (f *Feetech) Ping(ctx context.Context, ids []int) error {
	lo, hi, err := idRange(ids)
	if err != nil {
		return err
	}

	found, err := f.bus.Scan(ctx, lo, hi)
	if err != nil {
		return errors.Wrap(err, "while scanning")
	}

	seen := map[int]bool{}
	for _, s := range found {
		seen[s.ID] = true
	}

	for _, id := range ids {
		if !seen[id] {
			return errors.Errorf("servo #%d did not respond", id)
		}
		log.Debugf("servo #%d is alive", id)
	}

	return nil
}

func (f *Feetech) Enable(ctx context.Context) error {
	return f.group.EnableAll(ctx)
}

func (f *Feetech) Disable(ctx context.Context) error {
	return f.group.DisableAll(ctx)
}

func (f *Feetech) Read(ctx context.Context) (map[int]int, error) {
	raw, err := f.group.Positions(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[int]int, len(raw))
	for id, v := range raw {
		out[id] = v
	}

	return out, nil
}

func (f *Feetech) Write(ctx context.Context, positions map[int]int) error {
	pm := make(feetech.PositionMap, len(positions))
	for id, v := range positions {
		pm[id] = v
	}

	return f.group.SetPositions(ctx, pm)
}

func (f *Feetech) Close() error {
	return f.bus.Close()
}

// idRange returns the lowest and highest of the IDs, in whatever order they
// are given.
func idRange(ids []int) (lo, hi int, err error) {
	if len(ids) == 0 {
		return 0, 0, errors.New("no servos to ping")
	}

	lo, hi = ids[0], ids[0]
	for _, id := range ids[1:] {
		if id < lo {
			lo = id
		}
		if id > hi {
			hi = id
		}
	}

	return lo, hi, nil
}
