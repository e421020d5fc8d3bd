package moneyinput

import (
	"math"
	"testing"

	"golang.org/x/text/language"

	"github.com/VarunSharma3520/moneyinput/internal/money"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"usd", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", "¥"},
		{"CHF", "CHF "}, // valid, no conventional one-character sign
		{"ZZZ", ""},     // not an ISO 4217 code
		{"", ""},
	}

	for _, tt := range tests {
		got := Symbol(tt.code)
		if got != tt.want {
			t.Errorf("Symbol(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLocaleFormatterFormat(t *testing.T) {
	f := NewLocaleFormatter(language.English)

	tests := []struct {
		value float64
		opts  FormatOptions
		want  string
	}{
		{1000000, FormatOptions{Currency: "USD", ShowSymbol: true}, "$1,000,000"},
		{12.99, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}, "$12.99"},
		{12.999, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}, "$12.99"},
		{500.9, FormatOptions{Currency: "USD", ShowSymbol: true}, "$500"},
		{2500, FormatOptions{Currency: "USD"}, "2,500"},
		{0, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}, "$0.00"},
		{1234.5, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}, "$1,234.50"},
		{42, FormatOptions{Currency: "EUR", ShowSymbol: true}, "€42"},
	}

	for _, tt := range tests {
		got := f.Format(tt.value, tt.opts)
		if got != tt.want {
			t.Errorf("Format(%v, %+v) = %q, want %q", tt.value, tt.opts, got, tt.want)
		}
	}
}

// The formatter is exported for direct use, so it has to survive inputs the
// component would have normalized away.
func TestLocaleFormatterNonFiniteRendersZero(t *testing.T) {
	f := NewLocaleFormatter(language.English)

	tests := []struct {
		name  string
		value float64
		opts  FormatOptions
		want  string
	}{
		{"nan", math.NaN(), FormatOptions{Currency: "USD", ShowSymbol: true}, "$0"},
		{"+inf", math.Inf(1), FormatOptions{Currency: "USD", ShowSymbol: true}, "$0"},
		{"-inf", math.Inf(-1), FormatOptions{Currency: "USD", ShowSymbol: true}, "$0"},
		{"nan with cents", math.NaN(), FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}, "$0.00"},
	}

	for _, tt := range tests {
		got := f.Format(tt.value, tt.opts)
		if got != tt.want {
			t.Errorf("%s: Format(%v, %+v) = %q, want %q", tt.name, tt.value, tt.opts, got, tt.want)
		}
	}
}

// Stripping the sign and separators back out of a rendered string must give
// the value back, up to the configured fraction width.
func TestFormatSanitizeRoundTrip(t *testing.T) {
	f := NewLocaleFormatter(language.English)

	tests := []struct {
		value float64
		opts  FormatOptions
	}{
		{1000000, FormatOptions{Currency: "USD", ShowSymbol: true}},
		{12.99, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}},
		{1234.5, FormatOptions{Currency: "EUR", ShowCents: true, ShowSymbol: true}},
		{2500, FormatOptions{Currency: "USD"}},
		{0, FormatOptions{Currency: "USD", ShowCents: true, ShowSymbol: true}},
	}

	for _, tt := range tests {
		out := f.Format(tt.value, tt.opts)
		canonical := money.Sanitize(out, tt.opts.ShowCents)
		d, err := money.Parse(canonical)
		if err != nil {
			t.Errorf("Format(%v) = %q did not survive sanitizing: %v", tt.value, out, err)
			continue
		}
		if got := d.InexactFloat64(); got != tt.value {
			t.Errorf("round trip of %v through %q = %v", tt.value, out, got)
		}
	}
}
