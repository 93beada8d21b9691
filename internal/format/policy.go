// Package format derives the number formatting policy used to display the
// selected value and handed to the dialog.
//
// A Policy combines a Style, optional integer and fraction digit caps, a
// rounding mode and locale symbols. Derive is pure: the same inputs always
// yield an equal (==) Policy. Malformed cap text never fails; it leaves the
// cap Unbounded.
package format

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/dshills/calcsettings/internal/numeric"
)

// Unbounded marks a digit cap that is not set.
const Unbounded = -1

// DefaultPlaceholder is rendered for an absent value.
const DefaultPlaceholder = "No value"

// Policy is a derived, comparable formatting configuration.
type Policy struct {
	style       Style
	maxInt      int
	maxFrac     int
	minFrac     int
	rounding    numeric.RoundingMode
	symbols     Symbols
	placeholder string
}

// Option customizes Derive.
type Option func(*derivation)

type derivation struct {
	rounding    numeric.RoundingMode
	locale      language.Tag
	unit        currency.Unit
	unitSet     bool
	overrides   Symbols
	groupSize   int
	placeholder string
}

// WithRounding sets the rounding mode applied by the fraction cap.
func WithRounding(mode numeric.RoundingMode) Option {
	return func(d *derivation) {
		d.rounding = mode
	}
}

// WithLocale selects the locale whose separators and currency are used.
func WithLocale(tag language.Tag) Option {
	return func(d *derivation) {
		d.locale = tag
	}
}

// WithCurrency overrides the currency implied by the locale.
func WithCurrency(unit currency.Unit) Option {
	return func(d *derivation) {
		d.unit = unit
		d.unitSet = true
	}
}

// WithSymbols overrides the locale symbols. Empty fields keep the locale's
// choice; GroupSize is ignored here, see WithGroupSize.
func WithSymbols(s Symbols) Option {
	return func(d *derivation) {
		d.overrides = s
	}
}

// WithGroupSize overrides the locale's grouping size. Zero disables grouping;
// negative sizes are ignored.
func WithGroupSize(n int) Option {
	return func(d *derivation) {
		if n >= 0 {
			d.groupSize = n
		}
	}
}

// WithPlaceholder sets the text rendered for an absent value.
func WithPlaceholder(text string) Option {
	return func(d *derivation) {
		d.placeholder = text
	}
}

// Derive builds a Policy from the raw option state. Each digit cap is
// Unbounded when its flag is off or its text is not a valid count; the
// integer cap must be at least 1.
func Derive(style Style, intDigitsText string, intDigitsEnabled bool, fracDigitsText string, fracDigitsEnabled bool, opts ...Option) Policy {
	d := derivation{
		rounding:    numeric.RoundHalfEven,
		locale:      DefaultLocale,
		groupSize:   Unbounded,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(&d)
	}

	unit := d.unit
	if !d.unitSet {
		unit = CurrencyFor(d.locale)
	}

	p := Policy{
		style:       style,
		maxInt:      parseCap(intDigitsText, intDigitsEnabled, 1),
		maxFrac:     parseCap(fracDigitsText, fracDigitsEnabled, 0),
		rounding:    d.rounding,
		symbols:     resolveSymbols(SymbolsFor(d.locale, unit), d),
		placeholder: d.placeholder,
	}

	if style == StyleCurrency {
		scale, _ := currency.Standard.Rounding(unit)
		p.minFrac = scale
		if p.maxFrac != Unbounded && p.maxFrac < p.minFrac {
			p.minFrac = p.maxFrac
		}
	}
	return p
}

// Style returns the selected style.
func (p Policy) Style() Style { return p.style }

// MaxIntegerDigits returns the integer cap or Unbounded.
func (p Policy) MaxIntegerDigits() int { return p.maxInt }

// MaxFractionDigits returns the fraction cap or Unbounded.
func (p Policy) MaxFractionDigits() int { return p.maxFrac }

// MinFractionDigits returns the number of fraction digits always shown.
func (p Policy) MinFractionDigits() int { return p.minFrac }

// Rounding returns the rounding mode used by the fraction cap.
func (p Policy) Rounding() numeric.RoundingMode { return p.rounding }

// Symbols returns the resolved separators and currency symbol.
func (p Policy) Symbols() Symbols { return p.symbols }

// Placeholder returns the text rendered for an absent value.
func (p Policy) Placeholder() string { return p.placeholder }

func resolveSymbols(s Symbols, d derivation) Symbols {
	if d.overrides.Decimal != "" {
		s.Decimal = d.overrides.Decimal
	}
	if d.overrides.Group != "" {
		s.Group = d.overrides.Group
	}
	if d.overrides.Currency != "" {
		s.Currency = d.overrides.Currency
	}
	if d.groupSize != Unbounded {
		s.GroupSize = d.groupSize
	}
	if s.Group == s.Decimal {
		s.Group = ""
	}
	return s
}

// parseCap returns the cap in text, or Unbounded when disabled, malformed or
// below min. Caps are clamped to the int32 range the rounder accepts.
func parseCap(text string, enabled bool, min int) int {
	if !enabled {
		return Unbounded
	}
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt32
		}
		return Unbounded
	}
	if n < uint64(min) {
		return Unbounded
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
