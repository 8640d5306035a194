// internal/writer/status_writer.go
package writer

import (
	"github.com/tamzrod/fartd/internal/gpio"
	"github.com/tamzrod/fartd/internal/status"
)

// StatusWriter is the delivery-only contract for the indicator LEDs.
// It receives a level and shows it verbatim.
type StatusWriter interface {
	WriteStatus(l status.Level)
	Blink()
}

// LEDPins is the wiring of the three indicator LEDs.
type LEDPins struct {
	Red    gpio.Pin
	Yellow gpio.Pin
	Green  gpio.Pin
}

// IndicatorWriter drives the LEDs through a GPIO port.
type IndicatorWriter struct {
	port gpio.Port
	pins LEDPins
}

// NewIndicatorWriter configures the LED pins as outputs.
func NewIndicatorWriter(port gpio.Port, pins LEDPins) *IndicatorWriter {
	port.Output(pins.Green)
	port.Output(pins.Yellow)
	port.Output(pins.Red)

	return &IndicatorWriter{port: port, pins: pins}
}

// WriteStatus sets all three LEDs from the level's pattern.
// Every pin is written on every call; Blink changes red behind our back.
func (w *IndicatorWriter) WriteStatus(l status.Level) {
	w.write(status.Encode(l))
}

// Hello lights every LED.
func (w *IndicatorWriter) Hello() {
	w.write(status.All)
}

// Blink toggles the red LED.
func (w *IndicatorWriter) Blink() {
	w.port.Toggle(w.pins.Red)
}

func (w *IndicatorWriter) write(p status.Pattern) {
	w.set(w.pins.Green, p.Green)
	w.set(w.pins.Yellow, p.Yellow)
	w.set(w.pins.Red, p.Red)
}

func (w *IndicatorWriter) set(pin gpio.Pin, on bool) {
	if on {
		w.port.High(pin)
		return
	}
	w.port.Low(pin)
}

var _ StatusWriter = (*IndicatorWriter)(nil)
