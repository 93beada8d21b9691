package dialog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned for layout names or selector indices outside
// the closed set of layouts.
var ErrInvalidLayout = errors.New("invalid numpad layout")

// NumpadLayout is the arrangement of the dialog's digit buttons.
type NumpadLayout uint8

const (
	// LayoutCalculator puts 789 on the top row and 123 above 0.
	LayoutCalculator NumpadLayout = iota
	// LayoutPhone puts 123 on the top row and 789 above 0.
	LayoutPhone
)

var layoutNames = [...]string{
	LayoutCalculator: "calculator",
	LayoutPhone:      "phone",
}

// String returns the configuration name of the layout.
func (l NumpadLayout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return "unknown"
}

// Layouts returns the configuration names of all layouts in selector order.
func Layouts() []string {
	names := make([]string, len(layoutNames))
	copy(names, layoutNames[:])
	return names
}

// ParseNumpadLayout parses a layout name.
func ParseNumpadLayout(name string) (NumpadLayout, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range layoutNames {
		if candidate == n {
			return NumpadLayout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLayout, name)
}

// LayoutFromIndex maps a selector position to a layout.
func LayoutFromIndex(i int) (NumpadLayout, error) {
	if i < 0 || i >= len(layoutNames) {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidLayout, i)
	}
	return NumpadLayout(i), nil
}
