// internal/status/encode.go
package status

// Pattern is the state of the three indicator LEDs (true = lit).
type Pattern struct {
	Green  bool
	Yellow bool
	Red    bool
}

// Encode converts a level into the indicator pattern.
// No IO. No side effects.
//
// LevelUnknown is above LevelRed, so it asserts red like any other red
// reading. Red is never cleared there; blinking it is left to the loop.
func Encode(l Level) Pattern {
	return Pattern{
		Green:  l >= LevelGreen,
		Yellow: l >= LevelYellow,
		Red:    l >= LevelRed,
	}
}

// All is the pattern with every LED lit.
var All = Encode(LevelMax)
