// cmd/fartd/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/fartd/internal/config"
	"github.com/tamzrod/fartd/internal/daemon"
	"github.com/tamzrod/fartd/internal/gpio/rpio"
	"github.com/tamzrod/fartd/internal/monitor"
	"github.com/tamzrod/fartd/internal/poller"
	"github.com/tamzrod/fartd/internal/writer"
)

// sysexits(3)
const (
	exitOK          = 0
	exitUsage       = 64
	exitUnavailable = 69
	exitConfig      = 78
)

const syslogTag = "fartd"

func main() {
	mode, code := parseArgs(os.Args[1:], os.Stderr)
	if code != exitOK {
		os.Exit(code)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	os.Exit(run(mode, log))
}

// parseArgs accepts no arguments (daemon) or -d (interactive).
func parseArgs(args []string, stderr io.Writer) (monitor.Mode, int) {
	fs := flag.NewFlagSet("fartd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	interactive := fs.Bool("d", false, "stay in the foreground and trace calibration on stdout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fartd [-d]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return monitor.Daemon, exitUsage
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return monitor.Daemon, exitUsage
	}

	if *interactive {
		return monitor.Interactive, exitOK
	}
	return monitor.Daemon, exitOK
}

func run(mode monitor.Mode, log *logrus.Logger) int {
	interactive := mode == monitor.Interactive

	// --------------------
	// Board wiring
	// --------------------

	cfg, err := config.Default()
	if err != nil {
		log.WithError(err).Error("wiring invalid")
		return exitConfig
	}

	// --------------------
	// GPIO (held for the process lifetime)
	// --------------------

	port, err := rpio.Open()
	if err != nil {
		log.WithError(err).Error("gpio open failed")
		return exitUnavailable
	}

	// --------------------
	// Detach + syslog
	// --------------------

	if !interactive {
		d := daemon.NewDetacher()

		parent, err := d.Detach()
		if err != nil {
			log.WithError(err).Error("detach failed")
			return exitUnavailable
		}
		if parent {
			_ = port.Close()
			return exitOK
		}
		defer d.Release()

		hook, err := writer.NewSyslogHook(syslogTag)
		if err != nil {
			log.WithError(err).Warn("syslog unavailable, notices go to stderr")
		} else {
			log.AddHook(hook)
			log.SetOutput(io.Discard)
		}
	}

	// --------------------
	// Pins
	// --------------------

	leds := writer.BuildIndicator(cfg, port)

	var trace io.Writer
	if interactive {
		trace = os.Stdout
	}
	cal, err := poller.Build(cfg, port, trace)
	if err != nil {
		log.WithError(err).Error("calibrator build failed")
		return exitConfig
	}

	// say hello
	if !interactive && cfg.Poll.Hello() > 0 {
		leds.Hello()
		time.Sleep(cfg.Poll.Hello())
	}

	// --------------------
	// Control loop
	// --------------------

	notices := writer.BuildNotices(interactive, os.Stdout, log)

	m, err := monitor.New(monitor.Config{Interval: cfg.Poll.Interval()}, cal, leds, notices)
	if err != nil {
		log.WithError(err).Error("monitor build failed")
		return exitConfig
	}

	m.Start()

	if !interactive {
		if _, err := daemon.Ready(); err != nil {
			log.WithError(err).Warn("systemd notify failed")
		}
	}

	log.WithFields(logrus.Fields{
		"mode":     mode,
		"interval": cfg.Poll.Interval(),
	}).Debug("entering main loop")

	// Runs forever; the process ends by signal.
	_ = m.Run(context.Background())
	return exitOK
}
