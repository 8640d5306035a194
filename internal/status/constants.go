// internal/status/constants.go
package status

// Air quality thresholds on the calibration scale.
// These values define the log format and MUST NOT be configurable.

// ---- THRESHOLDS ----

// LevelGreen is the lowest level that lights the green LED.
const LevelGreen Level = 6

// LevelYellow is the lowest level that lights the yellow LED.
const LevelYellow Level = 10

// LevelRed is the lowest level that lights the red LED.
const LevelRed Level = 14

// ---- SENTINEL ----

// LevelUnknown means even the full resistor load did not pull the
// comparator low. It is beyond the sensor's range, not an error.
const LevelUnknown Level = 16

// LevelMax is the highest real DAC code.
const LevelMax Level = LevelUnknown - 1

// ---- FORMAT ----

// BeyondMeasurement is how LevelUnknown is written in notices.
const BeyondMeasurement = "<beyond measurement>"
