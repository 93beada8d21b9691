package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStyle is returned for style names or selector indices outside
// the closed set of styles.
var ErrInvalidStyle = errors.New("invalid format style")

// Style selects between plain number rendering and currency rendering.
type Style uint8

const (
	// StyleStandard renders a grouped decimal number.
	StyleStandard Style = iota
	// StyleCurrency prefixes the currency symbol and pads to the currency's scale.
	StyleCurrency
)

var styleNames = [...]string{
	StyleStandard: "standard",
	StyleCurrency: "currency",
}

// String returns the configuration name of the style.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// Styles returns the configuration names of all styles in selector order.
func Styles() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames[:])
	return names
}

// ParseStyle parses a style name.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range styleNames {
		if candidate == n {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, name)
}

// StyleFromIndex maps a selector position to a Style. Positions outside the
// known set are an invariant violation, not a reason to fall back.
func StyleFromIndex(i int) (Style, error) {
	if i < 0 || i >= len(styleNames) {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidStyle, i)
	}
	return Style(i), nil
}
