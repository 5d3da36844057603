package main

import (
	"context"
	"fmt"
	"time"

	"github.com/paudar/hulk/kinematics"
	"github.com/paudar/hulk/servos"
)

type WatchCommand struct {
	Interval time.Duration `long:"interval" default:"1s" description:"Time between reads"`
}

func (c *WatchCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	m := servos.DefaultMapping()

	bus, err := openBus(m)
	if err != nil {
		return err
	}
	defer bus.Close()

	pool := servos.New(bus, m)
	if err := pool.Shutdown(ctx); err != nil {
		return err
	}

	d := cfg.Walking.Dimensions

	for {
		b, err := pool.Read(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Left=%s\n", b.LeftLeg)
		fmt.Printf("Right=%s\n", b.RightLeg)
		fmt.Printf("LeftSole=%s\n", kinematics.ForwardLeg(d, d.Hip(true), b.LeftLeg))
		fmt.Printf("RightSole=%s\n", kinematics.ForwardLeg(d, d.Hip(false), b.RightLeg))

		fmt.Println()
		time.Sleep(c.Interval)
	}
}
