// internal/gpio/port.go
package gpio

// Pin is a BCM GPIO pin number.
type Pin uint8

// Level is the two-valued signal read from an input pin.
type Level uint8

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == Low {
		return "low"
	}
	return "high"
}

// Mode is the direction a pin is configured for.
type Mode uint8

const (
	Input Mode = iota // floating, high impedance
	Output
)

// Port abstracts the per-pin operations the core needs.
// Implementations are assumed fast and infallible once opened.
type Port interface {
	Input(p Pin)
	Output(p Pin)
	Low(p Pin)
	High(p Pin)
	Toggle(p Pin)
	Read(p Pin) Level
}
