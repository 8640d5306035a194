// internal/writer/builder.go
package writer

import (
	"io"

	"github.com/sirupsen/logrus"

	cfg "github.com/tamzrod/fartd/internal/config"
	"github.com/tamzrod/fartd/internal/gpio"
)

// BuildIndicator wires the LED writer from the board config.
func BuildIndicator(c *cfg.Config, port gpio.Port) *IndicatorWriter {
	return NewIndicatorWriter(port, LEDPins{
		Red:    gpio.Pin(c.Board.LEDs.Red),
		Yellow: gpio.Pin(c.Board.LEDs.Yellow),
		Green:  gpio.Pin(c.Board.LEDs.Green),
	})
}

// BuildNotices picks the notice sink for the run mode:
// the console when interactive, the logger otherwise.
func BuildNotices(interactive bool, console io.Writer, log logrus.FieldLogger) NoticeWriter {
	if interactive {
		return NewConsoleWriter(console)
	}
	return NewLogWriter(log)
}
