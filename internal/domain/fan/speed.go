// Package fan maps fan percentages onto a small vocabulary of named speeds.
package fan

import (
	"math"

	"ha-entity-engine/internal/domain/model"
)

type Speed string

const (
	Off    Speed = "off"
	On     Speed = "on"
	Low    Speed = "low"
	Medium Speed = "medium"
	High   Speed = "high"
)

// MaxCountForButtons is the largest speed count rendered as discrete buttons.
const MaxCountForButtons = 4

const (
	iconOn  = "mdi:fan"
	iconOff = "mdi:fan-off"
)

var speedIcons = []string{"mdi:fan-speed-1", "mdi:fan-speed-2", "mdi:fan-speed-3"}

var speedTable = map[int][]Speed{
	2: {Off, On},
	3: {Off, Low, High},
	4: {Off, Low, Medium, High},
}

// Step reads percentage_step, defaulting to 1.
func Step(attrs model.Attributes) float64 {
	step, ok := attrs.Float("percentage_step")
	if !ok || step <= 0 {
		return 1
	}
	return step
}

// SpeedCount is round(100/step) + 1, the number of positions including off.
func SpeedCount(step float64) int {
	if step <= 0 {
		step = 1
	}
	return int(round(100/step)) + 1
}

// Speeds returns the named vocabulary for count, if there is one.
func Speeds(count int) ([]Speed, bool) {
	speeds, ok := speedTable[count]
	return speeds, ok
}

func SupportsNamedSpeeds(count int) bool {
	_, ok := speedTable[count]
	return ok
}

// PercentageToSpeed quantizes a percentage. Anything without a named slot is Off.
func PercentageToSpeed(percentage, step float64) Speed {
	speeds, ok := Speeds(SpeedCount(step))
	if !ok {
		return Off
	}
	if step <= 0 {
		step = 1
	}
	idx := int(round(percentage / step))
	if idx < 0 || idx >= len(speeds) {
		return Off
	}
	return speeds[idx]
}

// SpeedToPercentage is the inverse of PercentageToSpeed. It floors, so the
// top speed of a truncated step such as 33.33 maps to 99 rather than 100.
func SpeedToPercentage(speed Speed, step float64) int {
	if step <= 0 {
		step = 1
	}
	speeds, ok := Speeds(SpeedCount(step))
	if !ok {
		return 0
	}
	idx := indexOf(speeds, speed)
	if idx < 0 {
		return 0
	}
	return int(math.Floor(float64(idx) * step))
}

// SpeedIcon returns the icon for a named speed within a vocabulary of count speeds.
func SpeedIcon(speed Speed, count int) (string, bool) {
	switch speed {
	case On:
		return iconOn, true
	case Off:
		return iconOff, true
	}
	speeds, ok := Speeds(count)
	if !ok {
		return "", false
	}
	idx := indexOf(speeds, speed)
	if idx < 1 || idx > len(speedIcons) {
		return "", false
	}
	return speedIcons[idx-1], true
}

func indexOf(speeds []Speed, speed Speed) int {
	for i, s := range speeds {
		if s == speed {
			return i
		}
	}
	return -1
}

// round matches half-up rounding for the non-negative values used here.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
