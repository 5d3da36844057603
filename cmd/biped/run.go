package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk"
	"github.com/paudar/hulk/components/controller"
	"github.com/paudar/hulk/components/feedback"
	"github.com/paudar/hulk/components/locomotion"
	"github.com/paudar/hulk/components/voltage"
	"github.com/paudar/hulk/servos"
)

const (

	// How long to wait for the robot to stand still after a shutdown was
	// requested, before turning the torque off anyway.
	shutdownGrace = 3 * time.Second
)

type RunCommand struct {
	Gamepad string `long:"gamepad" default:"/dev/input/event0" description:"Event device of the sixaxis controller"`
	Power    string `long:"power" description:"Serial port of the power board; no voltage check if not given"`
}

func (c *RunCommand) Execute(args []string) error {
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

	logrus.Infof("pinging servos")
	if err := bus.Ping(ctx, m.IDs()); err != nil {
		return err
	}

	pool := servos.New(bus, m)

	// Make sure we power the servos down, whatever happens next.
	defer pool.Shutdown(ctx)

	logrus.Infof("opening controller")
	f, err := os.Open(c.Gamepad)
	if err != nil {
		return errors.Wrap(err, "while opening controller")
	}
	defer f.Close()

	pad := controller.NewSixaxis(f)
	go pad.Run()

	r := hulk.NewRobot()

	fb := feedback.New(pool)
	fb.AssumeLoaded = true
	r.Add(fb)

	if c.Power != "" {
		meter, err := voltage.OpenSerial(c.Power)
		if err != nil {
			return err
		}
		defer meter.Close()
		go meter.Run()

		r.Add(voltage.New(meter))
	}

	r.Add(controller.New(pad))
	r.Add(locomotion.New(cfg, pool))

	logrus.Infof("booting components")
	if err := r.Boot(); err != nil {
		return err
	}

	if err := pool.Boot(ctx); err != nil {
		return err
	}

	return loop(r, cfg.CycleTime.Duration)
}

// loop ticks the robot until it has been asked to shut down and is standing
// still, or the grace period is over.
func loop(r *hulk.Robot, cycle time.Duration) error {
	t := time.NewTicker(cycle)
	defer t.Stop()

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to allow the
	// robot to stand still before powering down its servos.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	var deadline time.Time

	logrus.Infof("starting loop")
	for {
		select {
		case <-sig:
			logrus.Warnf("caught signal, shutting down")
			r.State.Shutdown = true

		case now := <-t.C:
			if err := r.Tick(now); err != nil {
				return err
			}

			if !r.State.Shutdown {
				continue
			}

			if deadline.IsZero() {
				deadline = now.Add(shutdownGrace)
			}

			if r.State.SafeExit {
				logrus.Infof("standing still, done")
				return nil
			}

			if now.After(deadline) {
				logrus.Warnf("gave up waiting to stand still")
				return nil
			}
		}
	}
}
