package format

import (
	"strings"

	"github.com/dshills/calcsettings/internal/numeric"
)

// Format renders v. An absent value renders as the placeholder whatever the
// style and caps.
//
// The fraction cap rounds with the policy's rounding mode (half-even unless
// configured otherwise). Trailing fraction zeros are dropped down to the
// minimum fraction digits. The integer cap keeps the low-order digits, which
// is how platform number formatters apply a maximum integer digit count.
func (p Policy) Format(v *numeric.Value) string {
	if v == nil {
		return p.placeholder
	}

	x := *v
	if p.maxFrac != Unbounded {
		x = x.Round(int32(p.maxFrac), p.rounding)
	}

	integer, fraction := x.Digits()
	fraction = strings.TrimRight(fraction, "0")
	if n := p.minFrac - len(fraction); n > 0 {
		fraction += strings.Repeat("0", n)
	}
	if p.maxInt != Unbounded && len(integer) > p.maxInt {
		integer = strings.TrimLeft(integer[len(integer)-p.maxInt:], "0")
		if integer == "" {
			integer = "0"
		}
	}

	var b strings.Builder
	if x.Sign() < 0 && !(allZeros(integer) && allZeros(fraction)) {
		b.WriteByte('-')
	}
	if p.style == StyleCurrency {
		b.WriteString(p.symbols.Currency)
	}
	writeGrouped(&b, integer, p.symbols.Group, p.symbols.GroupSize)
	if fraction != "" {
		b.WriteString(p.symbols.Decimal)
		b.WriteString(fraction)
	}
	return b.String()
}

func writeGrouped(b *strings.Builder, digits, sep string, size int) {
	if sep == "" || size <= 0 || len(digits) <= size {
		b.WriteString(digits)
		return
	}
	head := len(digits) % size
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
}

func allZeros(s string) bool {
	return strings.Trim(s, "0") == ""
}
