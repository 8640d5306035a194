// internal/status/level.go
package status

import "fmt"

// Level is one calibration result: the first DAC code (0-15) that pulled
// the comparator low, or LevelUnknown.
type Level int

// Band is the air quality band a Level falls in.
// Declaration order is severity order.
type Band int

const (
	BandClean Band = iota
	BandGreen
	BandYellow
	BandRed
	BandUnknown
)

// tag is the band marker used in notices. Casing is part of the format.
func (b Band) tag() string {
	switch b {
	case BandGreen:
		return "green"
	case BandYellow:
		return "yellow"
	case BandRed:
		return "RED"
	case BandUnknown:
		return "unknown"
	default:
		return "-"
	}
}

func (b Band) String() string { return b.tag() }

// Classify maps a level to its band.
// Thresholds are checked highest first so no reading falls through.
func Classify(l Level) Band {
	switch {
	case l == LevelUnknown:
		return BandUnknown
	case l >= LevelRed:
		return BandRed
	case l >= LevelYellow:
		return BandYellow
	case l >= LevelGreen:
		return BandGreen
	default:
		return BandClean
	}
}

// Band is shorthand for Classify(l).
func (l Level) Band() Band { return Classify(l) }

// String formats a level for notices, e.g. "14 (RED)" or "3 (-)".
func (l Level) String() string {
	b := Classify(l)
	if b == BandUnknown {
		return BeyondMeasurement
	}
	return fmt.Sprintf("%d (%s)", int(l), b.tag())
}
