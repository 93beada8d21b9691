package numeric

import (
	"fmt"
	"strings"
)

// RoundingMode selects how digits beyond a fraction cap are discarded.
type RoundingMode uint8

const (
	// RoundHalfEven rounds to the nearest neighbor, ties to the even digit.
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown truncates toward zero.
	RoundDown
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

var roundingNames = [...]string{
	RoundHalfEven: "half-even",
	RoundHalfUp:   "half-up",
	RoundUp:       "up",
	RoundDown:     "down",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
}

// String returns the configuration name of the mode.
func (m RoundingMode) String() string {
	if int(m) < len(roundingNames) {
		return roundingNames[m]
	}
	return "unknown"
}

// RoundingModes returns the configuration names of all modes in order.
func RoundingModes() []string {
	names := make([]string, len(roundingNames))
	copy(names, roundingNames[:])
	return names
}

// ParseRoundingMode parses a mode name such as "half-even". Matching is
// case-insensitive and accepts underscores in place of dashes.
func ParseRoundingMode(name string) (RoundingMode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, candidate := range roundingNames {
		if candidate == n {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", name)
}
