// internal/writer/syslog.go
package writer

import (
	"log/syslog"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/fartd/internal/status"
)

// LogWriter reports notices as logrus info entries. With a SyslogHook
// attached they reach syslog at notice severity.
type LogWriter struct {
	log logrus.FieldLogger
}

func NewLogWriter(log logrus.FieldLogger) *LogWriter {
	return &LogWriter{log: log}
}

func (w *LogWriter) Initial()          {}
func (w *LogWriter) Tick(at time.Time) {}

func (w *LogWriter) Started(l status.Level) {
	w.log.WithField("level", int(l)).Infof(startFormat, l)
}

func (w *LogWriter) Changed(from, to status.Level) {
	w.log.WithFields(logrus.Fields{
		"from": int(from),
		"to":   int(to),
	}).Infof(changeFormat, from, to)
}

var _ NoticeWriter = (*LogWriter)(nil)

// ---- logrus -> syslog ----

// severityWriter is the subset of *syslog.Writer the hook uses.
type severityWriter interface {
	Crit(m string) error
	Err(m string) error
	Warning(m string) error
	Notice(m string) error
	Debug(m string) error
}

// SyslogHook forwards logrus entries to syslog, message only.
// Info entries are sent as notices.
type SyslogHook struct {
	w severityWriter
}

// NewSyslogHook connects to the local syslog daemon right away under the
// daemon facility.
func NewSyslogHook(tag string) (*SyslogHook, error) {
	w, err := syslog.New(syslog.LOG_NOTICE|syslog.LOG_DAEMON, tag)
	if err != nil {
		return nil, errors.Wrap(err, "syslog connect")
	}
	return &SyslogHook{w: w}, nil
}

func (h *SyslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *SyslogHook) Fire(e *logrus.Entry) error {
	switch e.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return h.w.Crit(e.Message)
	case logrus.ErrorLevel:
		return h.w.Err(e.Message)
	case logrus.WarnLevel:
		return h.w.Warning(e.Message)
	case logrus.InfoLevel:
		return h.w.Notice(e.Message)
	default:
		return h.w.Debug(e.Message)
	}
}

var _ logrus.Hook = (*SyslogHook)(nil)
