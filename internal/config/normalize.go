// internal/config/normalize.go
package config

import "time"

// DefaultIntervalMs is the main loop period used when none is given.
const DefaultIntervalMs = 500

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = DefaultIntervalMs
	}

	// settle_us = 0 and hello_ticks = 0 are meaningful as-is.
}

// Interval is the main loop period.
func (p PollConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// Settle is the delay between programming the DAC and reading the comparator.
func (p PollConfig) Settle() time.Duration {
	return time.Duration(p.SettleUs) * time.Microsecond
}

// Hello is how long all LEDs are lit on daemon start.
func (p PollConfig) Hello() time.Duration {
	return time.Duration(p.HelloTicks) * p.Interval()
}
