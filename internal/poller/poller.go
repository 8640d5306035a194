// internal/poller/poller.go
package poller

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/tamzrod/fartd/internal/gpio"
	"github.com/tamzrod/fartd/internal/status"
)

// Config is the minimal runtime config the poller needs.
type Config struct {
	DAC    [4]gpio.Pin
	Detect gpio.Pin
	Settle time.Duration

	// Trace, if set, receives the sweep as it runs (interactive mode).
	Trace io.Writer
}

// Poller calibrates the sensor threshold with a DAC sweep.
type Poller struct {
	cfg   Config
	port  gpio.Port
	sleep func(time.Duration)
}

// New creates a poller with immutable config.
func New(cfg Config, port gpio.Port) (*Poller, error) {
	if port == nil {
		return nil, errors.New("poller: gpio port required")
	}
	seen := make(map[gpio.Pin]bool, len(cfg.DAC)+1)
	for _, p := range append(cfg.DAC[:], cfg.Detect) {
		if seen[p] {
			return nil, errors.Errorf("poller: pin %d used twice", p)
		}
		seen[p] = true
	}
	if cfg.Settle < 0 {
		return nil, errors.New("poller: settle must be >= 0")
	}
	return &Poller{cfg: cfg, port: port, sleep: time.Sleep}, nil
}

// PollOnce performs exactly one calibration sweep.
//
// Codes are tried in ascending order (increasing resistor load) and the
// first one that pulls the detect pin low is returned. If none does the
// reading is status.LevelUnknown. The DAC is left as the last code set it.
func (p *Poller) PollOnce() status.Level {
	for code := Code(0); code < Codes; code++ {
		p.tracef(" %2d", code)

		apply(p.port, Directives(code, p.cfg.DAC))

		if p.cfg.Settle > 0 {
			p.sleep(p.cfg.Settle)
		}

		if p.port.Read(p.cfg.Detect) == gpio.Low {
			p.tracef(".\n")
			return status.Level(code)
		}
	}

	p.tracef(" OMGWTF.\n")
	return status.LevelUnknown
}

// Calibrate is PollOnce under the name the control loop uses.
func (p *Poller) Calibrate() status.Level { return p.PollOnce() }

func (p *Poller) tracef(format string, args ...interface{}) {
	if p.cfg.Trace == nil {
		return
	}
	fmt.Fprintf(p.cfg.Trace, format, args...)
}
