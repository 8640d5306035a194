// internal/monitor/monitor_test.go
package monitor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tamzrod/fartd/internal/status"
)

// ---- fakes ----

type seqCalibrator struct {
	seq []status.Level
	n   int
}

func (c *seqCalibrator) Calibrate() status.Level {
	l := c.seq[c.n]
	if c.n < len(c.seq)-1 {
		c.n++
	}
	return l
}

// recorder is both the indicator and the notice sink; it keeps a single
// ordered event log.
type recorder struct {
	events []string
	ticks  []time.Time
}

func (r *recorder) WriteStatus(l status.Level) {
	r.events = append(r.events, fmt.Sprintf("leds %d", int(l)))
}

func (r *recorder) Blink() { r.events = append(r.events, "blink") }

func (r *recorder) Initial()          { r.events = append(r.events, "initial") }
func (r *recorder) Tick(at time.Time) { r.ticks = append(r.ticks, at) }

func (r *recorder) Started(l status.Level) {
	r.events = append(r.events, fmt.Sprintf("start %s", l))
}

func (r *recorder) Changed(from, to status.Level) {
	r.events = append(r.events, fmt.Sprintf("change %s -> %s", from, to))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func levels(ls ...int) []status.Level {
	out := make([]status.Level, len(ls))
	for i, l := range ls {
		out[i] = status.Level(l)
	}
	return out
}

func newMonitor(t *testing.T, seq []status.Level) (*Monitor, *recorder, *[]time.Duration) {
	t.Helper()

	rec := &recorder{}
	var slept []time.Duration
	clock := time.Date(2016, time.March, 4, 21, 0, 0, 0, time.UTC)

	m, err := New(
		Config{
			Interval: 500 * time.Millisecond,
			Sleep:    func(d time.Duration) { slept = append(slept, d) },
			Now: func() time.Time {
				clock = clock.Add(500 * time.Millisecond)
				return clock
			},
		},
		&seqCalibrator{seq: seq},
		rec,
		rec,
	)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return m, rec, &slept
}

// ---- tests ----

func TestStart_ReportsAndShowsInitialLevel(t *testing.T) {
	m, rec, slept := newMonitor(t, levels(4))

	if got := m.Start(); got != 4 {
		t.Fatalf("Start(): got %d want 4", got)
	}

	want := []string{"initial", "start 4 (-)", "leds 4"}
	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Fatalf("events: got %v want %v", rec.events, want)
	}
	if len(*slept) != 0 {
		t.Fatalf("Start must not sleep, slept %v", *slept)
	}

	// second Start is a no-op
	m.Start()
	if len(rec.events) != len(want) {
		t.Fatalf("second Start emitted events: %v", rec.events)
	}
}

func TestTick_UnchangedIsSilent(t *testing.T) {
	m, rec, _ := newMonitor(t, levels(7, 7, 7))
	m.Start()
	before := len(rec.events)

	if m.Tick() {
		t.Fatalf("Tick reported a change for identical readings")
	}
	if m.Tick() {
		t.Fatalf("Tick reported a change for identical readings")
	}
	if len(rec.events) != before {
		t.Fatalf("unchanged ticks emitted events: %v", rec.events[before:])
	}
}

func TestTick_SingleNotificationPerChange(t *testing.T) {
	m, rec, _ := newMonitor(t, levels(3, 9, 9))
	m.Start()

	if !m.Tick() {
		t.Fatalf("first tick should report the change")
	}
	if m.Tick() {
		t.Fatalf("second tick should be silent")
	}
	if n := rec.count("change"); n != 1 {
		t.Fatalf("expected 1 change notice, got %d", n)
	}
	if m.Level() != 9 {
		t.Fatalf("previous level: got %d want 9", m.Level())
	}
}

func TestTick_SleepsAndStampsEveryTick(t *testing.T) {
	m, rec, slept := newMonitor(t, levels(1, 1, 1, 1))
	m.Start()

	for i := 0; i < 3; i++ {
		m.Tick()
	}

	if len(*slept) != 3 {
		t.Fatalf("expected 3 sleeps, got %d", len(*slept))
	}
	for _, d := range *slept {
		if d != 500*time.Millisecond {
			t.Fatalf("sleep: got %v want 500ms", d)
		}
	}
	if len(rec.ticks) != 3 {
		t.Fatalf("expected 3 tick stamps, got %d", len(rec.ticks))
	}
}

func TestScenario_EndToEnd(t *testing.T) {
	m, rec, _ := newMonitor(t, levels(4, 4, 8, 14, 16, 16, 7))
	m.Start()
	for i := 0; i < 6; i++ {
		m.Tick()
	}

	want := []string{
		"initial",
		"start 4 (-)", "leds 4",
		"change 4 (-) -> 8 (green)", "leds 8",
		"change 8 (green) -> 14 (RED)", "leds 14",
		"blink", "change 14 (RED) -> <beyond measurement>", "leds 16",
		"blink",
		"change <beyond measurement> -> 7 (green)", "leds 7",
	}

	if fmt.Sprint(rec.events) != fmt.Sprint(want) {
		t.Fatalf("events:\n got %q\nwant %q", rec.events, want)
	}
	if n := rec.count("change"); n != 4 {
		t.Fatalf("expected 4 change notices, got %d", n)
	}
	if n := rec.count("blink"); n != 2 {
		t.Fatalf("expected 2 blinks, got %d", n)
	}
}

func TestTick_StartsIfNeeded(t *testing.T) {
	m, rec, _ := newMonitor(t, levels(5, 6))

	if !m.Tick() {
		t.Fatalf("expected change 5 -> 6")
	}
	if rec.count("start") != 1 {
		t.Fatalf("Tick before Start should run startup once: %v", rec.events)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	m, rec, _ := newMonitor(t, levels(2, 2, 11))

	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	m.cfg.Sleep = func(time.Duration) {
		ticks++
		if ticks == 2 {
			cancel()
		}
	}

	if err := m.Run(ctx); err != context.Canceled {
		t.Fatalf("Run(): got %v want context.Canceled", err)
	}
	if ticks != 2 {
		t.Fatalf("expected 2 ticks, got %d", ticks)
	}
	// the tick in flight when ctx was cancelled still completes
	if rec.count("change") != 1 {
		t.Fatalf("expected the second tick to finish: %v", rec.events)
	}
}

func TestNew_Validation(t *testing.T) {
	rec := &recorder{}
	cal := &seqCalibrator{seq: levels(0)}

	if _, err := New(Config{Interval: time.Second}, nil, rec, rec); err == nil {
		t.Fatalf("expected error for nil calibrator")
	}
	if _, err := New(Config{}, cal, rec, rec); err == nil {
		t.Fatalf("expected error for zero interval")
	}
}
