// internal/writer/writer.go
package writer

import (
	"fmt"
	"io"
	"time"

	"github.com/tamzrod/fartd/internal/status"
)

// Notice text. Part of the external log format.
const (
	startFormat  = "Starting -- initial air quality: %s"
	changeFormat = "Air quality changed: %s -> %s"
)

// NoticeWriter reports the air quality to a human.
type NoticeWriter interface {
	// Initial is called once before the first calibration.
	Initial()
	// Tick is called at the start of every steady-state tick.
	Tick(at time.Time)
	Started(l status.Level)
	Changed(from, to status.Level)
}

// ConsoleWriter writes notices to a terminal, unbuffered.
type ConsoleWriter struct {
	out io.Writer
}

func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

func (w *ConsoleWriter) Initial() {
	fmt.Fprint(w.out, "initial value: ")
}

// Tick prefixes the tick's sweep trace with the wall clock.
func (w *ConsoleWriter) Tick(at time.Time) {
	fmt.Fprintf(w.out, "%s: ", at.Format(time.ANSIC))
}

func (w *ConsoleWriter) Started(l status.Level) {
	fmt.Fprintf(w.out, startFormat+"\n", l)
}

func (w *ConsoleWriter) Changed(from, to status.Level) {
	fmt.Fprintf(w.out, changeFormat+"\n", from, to)
}

var _ NoticeWriter = (*ConsoleWriter)(nil)
