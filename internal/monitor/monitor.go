// internal/monitor/monitor.go
package monitor

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/tamzrod/fartd/internal/status"
	"github.com/tamzrod/fartd/internal/writer"
)

// Mode is how the process reports. Fixed for the process lifetime.
type Mode int

const (
	Daemon Mode = iota
	Interactive
)

func (m Mode) String() string {
	if m == Interactive {
		return "interactive"
	}
	return "daemon"
}

// Calibrator produces one reading per call. It cannot fail.
type Calibrator interface {
	Calibrate() status.Level
}

type state int

const (
	stateStartup state = iota
	stateSteady
)

// Config is what the loop needs besides its collaborators.
type Config struct {
	Interval time.Duration

	// Sleep and Now default to time.Sleep and time.Now.
	Sleep func(time.Duration)
	Now   func() time.Time
}

// Monitor is the control loop. It owns the previous level; nothing else
// reads or writes it.
type Monitor struct {
	cfg Config

	cal     Calibrator
	leds    writer.StatusWriter
	notices writer.NoticeWriter

	state state
	prev  status.Level
}

// New creates a monitor in the startup state.
func New(cfg Config, cal Calibrator, leds writer.StatusWriter, notices writer.NoticeWriter) (*Monitor, error) {
	if cal == nil || leds == nil || notices == nil {
		return nil, errors.New("monitor: calibrator, indicator and notices required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Monitor{cfg: cfg, cal: cal, leds: leds, notices: notices}, nil
}

// Level is the last observed level.
func (m *Monitor) Level() status.Level { return m.prev }

// Start takes the initial reading, reports it and shows it.
// It runs once; later calls are no-ops.
func (m *Monitor) Start() status.Level {
	if m.state != stateStartup {
		return m.prev
	}

	m.notices.Initial()
	air := m.cal.Calibrate()
	m.prev = air

	m.notices.Started(air)
	m.leds.WriteStatus(air)

	m.state = stateSteady
	return air
}

// Tick runs one steady-state cycle and reports whether the level changed.
// The sleep always runs to completion.
func (m *Monitor) Tick() bool {
	if m.state == stateStartup {
		m.Start()
	}

	m.cfg.Sleep(m.cfg.Interval)
	m.notices.Tick(m.cfg.Now())

	air := m.cal.Calibrate()

	// blink for as long as we are beyond range, changed or not
	if air == status.LevelUnknown {
		m.leds.Blink()
	}

	if air == m.prev {
		return false
	}

	m.notices.Changed(m.prev, air)
	m.leds.WriteStatus(air)
	m.prev = air
	return true
}

// Run starts the monitor and ticks until ctx is done.
// ctx is only checked between ticks.
func (m *Monitor) Run(ctx context.Context) error {
	m.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Tick()
	}
}
