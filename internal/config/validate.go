// internal/config/validate.go
package config

import (
	"fmt"
)

// MaxPin is the highest BCM pin broken out on the 40-pin header.
const MaxPin = 27

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// BOARD WIRING
	// ------------------------------------------------------------

	b := cfg.Board

	if len(b.DAC) != DACChannels {
		return fmt.Errorf(
			"board: dac needs exactly %d pins, got %d",
			DACChannels,
			len(b.DAC),
		)
	}

	// every pin is owned by exactly one role
	owner := make(map[uint8]string)

	claim := func(pin uint8, role string) error {
		if pin > MaxPin {
			return fmt.Errorf("board: %s pin %d out of range 0-%d", role, pin, MaxPin)
		}
		if prev, exists := owner[pin]; exists {
			return fmt.Errorf("board: pin %d used by both %s and %s", pin, prev, role)
		}
		owner[pin] = role
		return nil
	}

	for i, pin := range b.DAC {
		if err := claim(pin, fmt.Sprintf("dac R%d", i+1)); err != nil {
			return err
		}
	}
	if err := claim(b.Detect, "detect"); err != nil {
		return err
	}
	if err := claim(b.LEDs.Red, "led red"); err != nil {
		return err
	}
	if err := claim(b.LEDs.Yellow, "led yellow"); err != nil {
		return err
	}
	if err := claim(b.LEDs.Green, "led green"); err != nil {
		return err
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	p := cfg.Poll

	if p.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0, got %d", p.IntervalMs)
	}
	if p.SettleUs < 0 {
		return fmt.Errorf("poll: settle_us must be >= 0, got %d", p.SettleUs)
	}
	if p.HelloTicks < 0 {
		return fmt.Errorf("poll: hello_ticks must be >= 0, got %d", p.HelloTicks)
	}

	return nil
}
