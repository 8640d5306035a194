// internal/poller/builder.go
package poller

import (
	"io"

	cfg "github.com/tamzrod/fartd/internal/config"
	"github.com/tamzrod/fartd/internal/gpio"
)

// Build constructs a Poller from the board wiring.
// The detect pin is configured as input; the DAC pins are left to the
// first sweep. trace may be nil.
func Build(c *cfg.Config, port gpio.Port, trace io.Writer) (*Poller, error) {
	var dac [4]gpio.Pin
	for i := range dac {
		if i < len(c.Board.DAC) {
			dac[i] = gpio.Pin(c.Board.DAC[i])
		}
	}

	p, err := New(
		Config{
			DAC:    dac,
			Detect: gpio.Pin(c.Board.Detect),
			Settle: c.Poll.Settle(),
			Trace:  trace,
		},
		port,
	)
	if err != nil {
		return nil, err
	}

	port.Input(p.cfg.Detect)
	return p, nil
}
