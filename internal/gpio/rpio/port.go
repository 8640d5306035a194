// internal/gpio/rpio/port.go
package rpio

import (
	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/tamzrod/fartd/internal/gpio"
)

// Port implements gpio.Port on the BCM2835 register map (/dev/gpiomem).
// There is one register mapping per process; Port is only a handle to it.
type Port struct {
	open bool
}

// Open maps the GPIO registers. The mapping is held until Close.
func Open() (*Port, error) {
	if err := rpio.Open(); err != nil {
		return nil, errors.Wrap(err, "gpio open")
	}
	return &Port{open: true}, nil
}

// Close unmaps the GPIO registers.
func (p *Port) Close() error {
	if p == nil || !p.open {
		return nil
	}
	p.open = false
	return errors.Wrap(rpio.Close(), "gpio close")
}

// ---- gpio.Port interface ----

func (p *Port) Input(pin gpio.Pin)  { rpio.Pin(pin).Input() }
func (p *Port) Output(pin gpio.Pin) { rpio.Pin(pin).Output() }
func (p *Port) Low(pin gpio.Pin)    { rpio.Pin(pin).Low() }
func (p *Port) High(pin gpio.Pin)   { rpio.Pin(pin).High() }
func (p *Port) Toggle(pin gpio.Pin) { rpio.Pin(pin).Toggle() }

func (p *Port) Read(pin gpio.Pin) gpio.Level {
	if rpio.Pin(pin).Read() == rpio.Low {
		return gpio.Low
	}
	return gpio.High
}

var _ gpio.Port = (*Port)(nil)
