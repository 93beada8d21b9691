package config

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/dshills/calcsettings/internal/bounds"
	"github.com/dshills/calcsettings/internal/config/loader"
	"github.com/dshills/calcsettings/internal/config/registry"
	"github.com/dshills/calcsettings/internal/dialog"
	"github.com/dshills/calcsettings/internal/format"
	"github.com/dshills/calcsettings/internal/numeric"
)

// Field is a text option paired with the checkbox that enables it.
type Field struct {
	Text    string
	Enabled bool
}

// Options is the raw option state. It is a plain value: copies are
// independent and two Options compare equal with == when every option
// matches.
type Options struct {
	Min Field
	Max Field

	Style             format.Style
	MaxIntegerDigits  Field
	MaxFractionDigits Field
	Rounding          numeric.RoundingMode
	Locale            string
	Currency          string
	DecimalSeparator  string
	GroupSeparator    string
	GroupSize         int
	Placeholder       string

	Behavior dialog.Behavior
	Layout   dialog.NumpadLayout
}

// DefaultOptions returns the registry defaults.
func DefaultOptions() Options {
	var o Options
	if err := o.Apply(registry.Default().Defaults()); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return o
}

// Set validates raw against the option definition and stores it.
// Text options accept any string, checkboxes a bool, integers an int, and
// selectors either an entry name or its index.
func (o *Options) Set(path string, raw any) error {
	reg := registry.Default()
	if err := reg.Validate(path, raw); err != nil {
		return newValidationError(path, raw, err)
	}
	s := reg.Get(path)

	if p := o.text(path); p != nil {
		*p = raw.(string)
		return nil
	}
	if p := o.flag(path); p != nil {
		*p = raw.(bool)
		return nil
	}

	switch s.Type {
	case registry.TypeInt:
		n, _ := registry.AsInt(raw)
		o.GroupSize = n
	case registry.TypeEnum:
		i, _ := s.EnumIndex(raw)
		var err error
		switch path {
		case registry.FormatStyle:
			o.Style, err = format.StyleFromIndex(i)
		case registry.FormatRounding:
			o.Rounding = numeric.RoundingMode(i)
		case registry.DialogNumpadLayout:
			o.Layout, err = dialog.LayoutFromIndex(i)
		}
		if err != nil {
			return newValidationError(path, raw, fmt.Errorf("%w: %w", ErrInvalidIndex, err))
		}
	}
	return nil
}

// SetText converts text to the option's type and stores it. Used for
// environment overrides, where every value arrives as a string.
func (o *Options) SetText(path, text string) error {
	s := registry.Default().Get(path)
	if s == nil {
		return newValidationError(path, text, fmt.Errorf("%w: %s", ErrUnknownOption, path))
	}
	raw, err := s.Coerce(text)
	if err != nil {
		return newValidationError(path, text, err)
	}
	return o.Set(path, raw)
}

// Get returns the raw value of an option, or nil for an unknown path.
// Selectors are returned by entry name.
func (o Options) Get(path string) any {
	if p := o.text(path); p != nil {
		return *p
	}
	if p := o.flag(path); p != nil {
		return *p
	}
	switch path {
	case registry.FormatGroupSize:
		return o.GroupSize
	case registry.FormatStyle:
		return o.Style.String()
	case registry.FormatRounding:
		return o.Rounding.String()
	case registry.DialogNumpadLayout:
		return o.Layout.String()
	}
	return nil
}

// Apply sets every option in a nested or flat map, as produced by the
// loaders. String values for checkbox and integer options are converted,
// and plain numbers given for text options such as bounds and digit caps
// are written out as text. All invalid entries are reported; valid ones
// are still applied.
//
// Floating-point numbers arrive already rounded to float64, so a file
// should quote bounds that need more than 15 significant digits.
func (o *Options) Apply(data map[string]any) error {
	flat := loader.Flatten(data)
	var errs []error
	for _, path := range loader.SortedPaths(flat) {
		if err := o.apply(path, flat[path]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *Options) apply(path string, raw any) error {
	if text, ok := raw.(string); ok {
		return o.SetText(path, text)
	}
	if s := registry.Default().Get(path); s != nil && s.Type == registry.TypeString {
		if text, ok := numberText(raw); ok {
			return o.SetText(path, text)
		}
	}
	return o.Set(path, raw)
}

// numberText renders the numeric types produced by the TOML and YAML
// decoders.
func numberText(raw any) (string, bool) {
	switch v := raw.(type) {
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Diff returns the paths whose raw values differ between a and b, sorted.
func Diff(a, b Options) []string {
	var paths []string
	for _, s := range registry.Default().All() {
		if a.Get(s.Path) != b.Get(s.Path) {
			paths = append(paths, s.Path)
		}
	}
	return paths
}

// BoundsPolicy derives the bounds from scratch. The maximum is applied
// first, so if the two conflict the minimum is kept.
func (o Options) BoundsPolicy() bounds.Policy {
	return bounds.Policy{}.
		SetMax(o.Max.Text, o.Max.Enabled).
		SetMin(o.Min.Text, o.Min.Enabled)
}

// FormatPolicy derives the formatting policy. An unparseable locale or
// currency code falls back to the default.
func (o Options) FormatPolicy() format.Policy {
	opts := []format.Option{
		format.WithRounding(o.Rounding),
		format.WithSymbols(format.Symbols{
			Decimal: o.DecimalSeparator,
			Group:   o.GroupSeparator,
		}),
		format.WithGroupSize(o.GroupSize),
		format.WithPlaceholder(o.Placeholder),
	}
	if o.Locale != "" {
		if tag, err := language.Parse(o.Locale); err == nil {
			opts = append(opts, format.WithLocale(tag))
		}
	}
	if o.Currency != "" {
		if unit, err := currency.ParseISO(o.Currency); err == nil {
			opts = append(opts, format.WithCurrency(unit))
		}
	}
	return format.Derive(
		o.Style,
		o.MaxIntegerDigits.Text, o.MaxIntegerDigits.Enabled,
		o.MaxFractionDigits.Text, o.MaxFractionDigits.Enabled,
		opts...,
	)
}

func (o *Options) text(path string) *string {
	switch path {
	case registry.BoundsMin:
		return &o.Min.Text
	case registry.BoundsMax:
		return &o.Max.Text
	case registry.FormatMaxIntegerDigits:
		return &o.MaxIntegerDigits.Text
	case registry.FormatMaxFractionDigits:
		return &o.MaxFractionDigits.Text
	case registry.FormatLocale:
		return &o.Locale
	case registry.FormatCurrency:
		return &o.Currency
	case registry.FormatDecimalSeparator:
		return &o.DecimalSeparator
	case registry.FormatGroupSeparator:
		return &o.GroupSeparator
	case registry.FormatPlaceholder:
		return &o.Placeholder
	}
	return nil
}

func (o *Options) flag(path string) *bool {
	switch path {
	case registry.BoundsMinEnabled:
		return &o.Min.Enabled
	case registry.BoundsMaxEnabled:
		return &o.Max.Enabled
	case registry.FormatMaxIntegerDigitsEnabled:
		return &o.MaxIntegerDigits.Enabled
	case registry.FormatMaxFractionDigitsEnabled:
		return &o.MaxFractionDigits.Enabled
	case registry.DialogExpressionShown:
		return &o.Behavior.ExpressionShown
	case registry.DialogExpressionEditable:
		return &o.Behavior.ExpressionEditable
	case registry.DialogAnswerButtonShown:
		return &o.Behavior.AnswerButtonShown
	case registry.DialogSignButtonShown:
		return &o.Behavior.SignButtonShown
	case registry.DialogOrderOfOperationsApplied:
		return &o.Behavior.OrderOfOperationsApplied
	case registry.DialogEvaluateOnOperation:
		return &o.Behavior.EvaluateOnOperation
	case registry.DialogZeroShownWhenNoValue:
		return &o.Behavior.ZeroShownWhenNoValue
	}
	return nil
}
