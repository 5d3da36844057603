package main

import (
	"context"

	"github.com/paudar/hulk/servos"
)

type ShutdownCommand struct{}

func (c *ShutdownCommand) Execute(args []string) error {
	m := servos.DefaultMapping()

	bus, err := openBus(m)
	if err != nil {
		return err
	}
	defer bus.Close()

	return servos.New(bus, m).Shutdown(context.Background())
}
