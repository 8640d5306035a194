// internal/config/config.go
package config

type Config struct {
	Board BoardConfig `yaml:"board"`
	Poll  PollConfig  `yaml:"poll"`
}

// ---- BOARD WIRING (BCM numbering) ----

type BoardConfig struct {
	// DAC resistor channels R1..R4; index i is bit i of the DAC code.
	DAC    []uint8   `yaml:"dac"`
	Detect uint8     `yaml:"detect"`
	LEDs   LEDConfig `yaml:"leds"`
}

type LEDConfig struct {
	Red    uint8 `yaml:"red"`
	Yellow uint8 `yaml:"yellow"`
	Green  uint8 `yaml:"green"`
}

// ---- TIMING ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	SettleUs   int `yaml:"settle_us"` // 0 = read immediately after programming the DAC

	// HelloTicks is how many intervals all LEDs stay lit on daemon start.
	HelloTicks int `yaml:"hello_ticks"`
}

// DACChannels is the fixed width of the resistor ladder.
const DACChannels = 4
