// internal/poller/types.go
package poller

import "github.com/tamzrod/fartd/internal/gpio"

// Code is a 4-bit DAC code. Bit i set means resistor channel i sinks
// current (output, driven low); bit i clear leaves it floating (input).
type Code uint8

// Codes is the number of DAC codes tried per sweep.
const Codes = 16

// Directive is one pin configuration step of a DAC code.
type Directive struct {
	Pin  gpio.Pin
	Mode gpio.Mode
}

// Directives expands a DAC code into per-channel pin configuration,
// channel 0 first. Pure: no IO.
func Directives(code Code, dac [4]gpio.Pin) []Directive {
	out := make([]Directive, 0, len(dac))
	for i, pin := range dac {
		mode := gpio.Input
		if code&(1<<uint(i)) != 0 {
			mode = gpio.Output
		}
		out = append(out, Directive{Pin: pin, Mode: mode})
	}
	return out
}

// apply programs the DAC. Output channels are driven low.
func apply(port gpio.Port, ds []Directive) {
	for _, d := range ds {
		if d.Mode == gpio.Output {
			port.Output(d.Pin)
			port.Low(d.Pin)
			continue
		}
		port.Input(d.Pin)
	}
}
