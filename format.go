package moneyinput

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatOptions carries the presentation settings the formatter needs.
type FormatOptions struct {
	// Currency is the ISO 4217 code used to pick the display sign.
	Currency string
	// ShowCents selects two fraction digits instead of none.
	ShowCents bool
	// ShowSymbol prefixes the rendered number with the currency sign.
	ShowSymbol bool
}

// Formatter renders a settled numeric value into its display string. The
// component calls it on focus, on blur, and on programmatic value changes;
// it is never called while the user is mid-keystroke. Swap it out for a fake
// in tests to make display assertions independent of locale data.
type Formatter interface {
	Format(value float64, opts FormatOptions) string
}

// symbols maps common ISO 4217 codes to their conventional signs. Codes not
// listed here but known to ISO fall back to the code itself.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"RUB": "₽",
	"TRY": "₺",
	"NGN": "₦",
	"PHP": "₱",
	"VND": "₫",
	"THB": "฿",
	"ILS": "₪",
	"UAH": "₴",
	"AUD": "A$",
	"CAD": "CA$",
}

// Symbol returns the display sign for a currency code: "$" for USD, "€" for
// EUR, and so on. Valid codes without a conventional sign come back as the
// code followed by a space ("CHF "), the way minor currencies are usually
// written out. Anything that is not an ISO 4217 code yields the empty string,
// so a misconfigured currency silently renders bare numbers.
func Symbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := symbols[code]; ok {
		return s
	}
	if _, err := currency.ParseISO(code); err == nil {
		return code + " "
	}
	return ""
}

// LocaleFormatter is the default Formatter. It renders through the CLDR
// number formatting tables for a language tag, which is where the digit
// grouping and decimal separator conventions come from. The fraction width is
// pinned on both ends (exactly two digits in cents mode, none otherwise) and
// the value is truncated, not rounded, before formatting.
type LocaleFormatter struct {
	printer *message.Printer
}

// NewLocaleFormatter returns a formatter for the given language tag.
func NewLocaleFormatter(tag language.Tag) *LocaleFormatter {
	return &LocaleFormatter{printer: message.NewPrinter(tag)}
}

// Format renders value per opts. 1000000 in USD with the sign on renders as
// "$1,000,000"; 12.999 with cents on renders as "$12.99". NaN and the
// infinities render as zero.
func (f *LocaleFormatter) Format(value float64, opts FormatOptions) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		// decimal.NewFromFloat only accepts finite values.
		value = 0
	}

	scale := 0
	if opts.ShowCents {
		scale = 2
	}

	// Truncate exactly first; the CLDR layer would round.
	v := decimal.NewFromFloat(value).Truncate(int32(scale)).InexactFloat64()

	out := f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(scale),
		number.MaxFractionDigits(scale),
	))
	if opts.ShowSymbol {
		out = Symbol(opts.Currency) + out
	}
	return out
}
