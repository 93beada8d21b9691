// Package numeric provides the arbitrary-precision decimal value shared by the
// bounds, format, dialog and controller packages.
//
// A Value is immutable. Optional values are passed as *Value, where nil means
// "no value".
package numeric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmpty is returned by Parse for blank text.
var ErrEmpty = errors.New("empty number")

// ErrExponentRange is returned by Parse for numbers whose exponent is
// beyond MaxExponent in either direction.
var ErrExponentRange = errors.New("number exponent out of range")

// MaxExponent bounds the decimal exponent Parse accepts. String renders
// without exponent notation, so this also bounds the length of the text.
const MaxExponent = 1000

// Value is an exact base-10 number with unbounded integer and fraction digits.
type Value struct {
	d decimal.Decimal
}

// Parse reads a number in plain ("-12.50") or exponent ("-1E10") notation.
// Surrounding whitespace is ignored. Numbers needing more than MaxExponent
// fraction digits or trailing zeros are rejected.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, ErrEmpty
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	if exp := d.Exponent(); exp < -MaxExponent || exp > MaxExponent {
		return Value{}, fmt.Errorf("parsing number %q: %w", s, ErrExponentRange)
	}
	return Value{d: d}, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// FromDecimal wraps a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Value {
	return Value{d: d}
}

// FromInt returns the Value for an integer.
func FromInt(i int64) Value {
	return Value{d: decimal.NewFromInt(i)}
}

// Ptr returns a pointer to a copy of v.
func Ptr(v Value) *Value {
	return &v
}

// Decimal returns the underlying decimal.
func (v Value) Decimal() decimal.Decimal {
	return v.d
}

// String renders v as plain text without exponent notation. The scale is
// preserved, so "42.50" stays "42.50" and Parse(v.String()) reproduces v.
func (v Value) String() string {
	if exp := v.d.Exponent(); exp < 0 {
		return v.d.StringFixed(-exp)
	}
	return v.d.String()
}

// Scale returns the number of fraction digits carried by v.
func (v Value) Scale() int32 {
	if exp := v.d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// Cmp compares v and o: -1 if v < o, 0 if equal, +1 if v > o.
func (v Value) Cmp(o Value) int {
	return v.d.Cmp(o.d)
}

// Equal reports whether v and o are numerically equal.
func (v Value) Equal(o Value) bool {
	return v.d.Equal(o.d)
}

// Sign returns -1, 0 or +1.
func (v Value) Sign() int {
	return v.d.Sign()
}

// IsZero reports whether v is zero.
func (v Value) IsZero() bool {
	return v.d.IsZero()
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{d: v.d.Neg()}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{d: v.d.Abs()}
}

// Round returns v rounded to places fraction digits using mode. Values that
// already carry places or fewer fraction digits are returned unchanged.
func (v Value) Round(places int32, mode RoundingMode) Value {
	if places < 0 || v.Scale() <= places {
		return v
	}
	switch mode {
	case RoundHalfUp:
		return Value{d: v.d.Round(places)}
	case RoundUp:
		return Value{d: v.d.RoundUp(places)}
	case RoundDown:
		return Value{d: v.d.RoundDown(places)}
	case RoundCeiling:
		return Value{d: v.d.RoundCeil(places)}
	case RoundFloor:
		return Value{d: v.d.RoundFloor(places)}
	default:
		return Value{d: v.d.RoundBank(places)}
	}
}

// Digits splits |v| into its integer and fraction digit strings.
// The integer part is never empty.
func (v Value) Digits() (integer, fraction string) {
	s := v.Abs().String()
	integer, fraction, _ = strings.Cut(s, ".")
	if integer == "" {
		integer = "0"
	}
	return integer, fraction
}

// Equal compares two optional values. Two nil values are equal.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
