// Package currency converts between the payment provider's integer minor-unit
// amounts and display values, and renders amounts for display.
package currency

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayLocale is the fixed locale used for every display string so output
// does not depend on the viewer.
var DisplayLocale = language.AmericanEnglish

// DefaultZeroDecimalCurrencies lists the currencies the provider encodes without a
// fractional minor unit.
var DefaultZeroDecimalCurrencies = []string{
	"bif", "clp", "djf", "gnf", "jpy", "kmf", "krw", "mga",
	"pyg", "rwf", "ugx", "vnd", "vuv", "xaf", "xof", "xpf",
}

// Formatter converts and formats currency amounts.
// It is read-only after construction and safe for concurrent use.
type Formatter struct {
	zeroDecimal map[string]struct{}
}

// NewFormatter creates a formatter that treats the given currency codes as
// zero-decimal. Codes are matched case-insensitively.
func NewFormatter(zeroDecimalCodes []string) *Formatter {
	set := make(map[string]struct{}, len(zeroDecimalCodes))
	for _, code := range zeroDecimalCodes {
		code = normalize(code)
		if code != "" {
			set[code] = struct{}{}
		}
	}
	return &Formatter{zeroDecimal: set}
}

// IsZeroDecimal reports whether the currency has no fractional minor unit
func (f *Formatter) IsZeroDecimal(code string) bool {
	_, ok := f.zeroDecimal[normalize(code)]
	return ok
}

// Scale returns the number of decimal places displayed for the currency
func (f *Formatter) Scale(code string) int {
	if f.IsZeroDecimal(code) {
		return 0
	}
	return TwoDecimalScale
}

// FromProviderAmount converts a provider amount in minor units to a display value.
// Unknown currencies are treated as having two decimal places.
func (f *Formatter) FromProviderAmount(amount int64, code string) float64 {
	if f.IsZeroDecimal(code) {
		return float64(amount)
	}
	return float64(amount) / MinorUnitsPerMajor
}

// ToProviderAmount converts a display value back to provider minor units,
// rounding to the nearest unit.
func (f *Formatter) ToProviderAmount(amount float64, code string) int64 {
	if f.IsZeroDecimal(code) {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * MinorUnitsPerMajor))
}

// Format renders a display value with the currency's symbol and precision,
// e.g. "$13.00" or "¥1,300". Codes that are not valid ISO 4217 codes are rendered
// as the upper-cased code followed by the number; an empty code renders the
// number alone.
func (f *Formatter) Format(amount float64, code string) string {
	p := message.NewPrinter(DisplayLocale)
	num := p.Sprint(number.Decimal(amount, number.Scale(f.Scale(code))))

	code = normalize(code)
	if code == "" {
		return num
	}

	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return strings.ToUpper(code) + " " + num
	}

	symbol := p.Sprint(currency.NarrowSymbol(unit))
	if strings.HasPrefix(num, "-") {
		return "-" + symbol + strings.TrimPrefix(num, "-")
	}
	return symbol + num
}

// FormatProviderAmount converts a provider amount and formats it for display
func (f *Formatter) FormatProviderAmount(amount int64, code string) string {
	return f.Format(f.FromProviderAmount(amount, code), code)
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
