package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/paudar/hulk/components/locomotion"
	"github.com/paudar/hulk/servos"
)

type Options struct {
	Port    string `short:"p" long:"port" default:"/dev/ttyUSB0" description:"Serial port of the servo bus"`
	Bus     string `short:"b" long:"bus" default:"feetech" choice:"feetech" choice:"dynamixel" description:"Kind of servos on the bus"`
	Config  string `short:"c" long:"config" description:"Parameter file (JSON); defaults are used if not given"`
	Verbose []bool `short:"v" long:"verbose" description:"Log more (repeat for debug)"`

	Run      RunCommand      `command:"run" description:"Walk, driven by a gamepad"`
	Sim      SimCommand      `command:"sim" description:"Run the robot against fake servos, driven by the keyboard"`
	Watch    WatchCommand    `command:"watch" description:"Turn the torque off and print where the feet are"`
	Shutdown ShutdownCommand `command:"shutdown" description:"Turn the torque off on every servo"`
	Defaults DefaultsCommand `command:"defaults" description:"Write the default parameters to a file"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "biped - walking engine for a small humanoid robot"

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging(len(opts.Verbose))
		return cmd.Execute(args)
	}

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}

func setupLogging(verbosity int) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch {
	case verbosity >= 2:
		logrus.SetLevel(logrus.DebugLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// loadConfig reads the parameter file given on the command line, if any.
func loadConfig() (locomotion.Config, error) {
	if opts.Config == "" {
		return locomotion.DefaultConfig(), nil
	}

	return locomotion.LoadConfig(opts.Config)
}

// bus is the servo driver on the serial port, whichever kind it is.
type bus interface {
	servos.Driver
	Ping(ctx context.Context, ids []int) error
	Close() error
}

func openBus(m servos.Mapping) (bus, error) {
	logrus.Infof("opening %s bus on %s", opts.Bus, opts.Port)

	if opts.Bus == "dynamixel" {
		d, err := servos.OpenDynamixel(opts.Port, m)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	f, err := servos.OpenFeetech(opts.Port, m)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type DefaultsCommand struct {
	Out string `short:"o" long:"out" default:"hulk.json" description:"Where to write the parameters"`
}

func (c *DefaultsCommand) Execute(args []string) error {
	return locomotion.DefaultConfig().Save(c.Out)
}
