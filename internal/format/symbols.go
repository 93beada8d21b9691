package format

import (
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured.
var DefaultLocale = language.AmericanEnglish

// Symbols are the characters placed around the digits.
type Symbols struct {
	// Decimal separates the integer and fraction parts.
	Decimal string
	// Group separates integer digit groups. Empty disables grouping.
	Group string
	// GroupSize is the number of digits per group. Zero disables grouping.
	GroupSize int
	// Currency is the symbol prefixed in currency style.
	Currency string
}

// probe is formatted in the target locale to discover its separators.
const probe = 1234567.5

// SymbolsFor returns the separators used by tag and the symbol tag uses for unit.
func SymbolsFor(tag language.Tag, unit currency.Unit) Symbols {
	p := message.NewPrinter(tag)
	s := scanSeparators(p.Sprint(number.Decimal(probe)))
	s.Currency = p.Sprint(currency.Symbol(unit))
	return s
}

// CurrencyFor returns the currency used in the region of tag, or USD when
// the region cannot be determined.
func CurrencyFor(tag language.Tag) currency.Unit {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return currency.USD
	}
	return unit
}

// scanSeparators splits a rendered probe like "1,234,567.5" into runs of
// digits and the separators between them. The last separator is the decimal
// separator; the first, when there is more than one, is the group separator.
// Marks before the first or after the last digit are ignored.
func scanSeparators(rendered string) Symbols {
	var digits, seps []string
	var run []rune
	inDigits := false
	for _, r := range rendered {
		isDigit := unicode.IsDigit(r)
		if isDigit != inDigits && len(run) > 0 {
			if inDigits {
				digits = append(digits, string(run))
			} else if len(digits) > 0 {
				seps = append(seps, string(run))
			}
			run = run[:0]
		}
		inDigits = isDigit
		run = append(run, r)
	}
	if inDigits && len(run) > 0 {
		digits = append(digits, string(run))
	}

	s := Symbols{Decimal: "."}
	if len(digits) < 2 || len(seps) < len(digits)-1 {
		return s
	}
	seps = seps[:len(digits)-1]
	s.Decimal = seps[len(seps)-1]
	if len(digits) >= 3 {
		s.Group = seps[0]
		s.GroupSize = len([]rune(digits[len(digits)-2]))
	}
	return s
}
