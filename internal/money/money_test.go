package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		raw       string
		keepCents bool
		want      string
	}{
		{"", false, ""},
		{"", true, ""},
		{"1000000", false, "1000000"},
		{"$1,000,000", false, "1000000"},
		{"12.34", false, "12"},
		{"12.34", true, "12.34"},
		{"12.999", true, "12.99"},
		{"12.9", true, "12.9"},
		{"1.2.3", true, "1.2"},
		{"1.2.3", false, "1"},
		{".", true, "."},
		{".", false, ""},
		{".5", true, ".5"},
		{"5.", true, "5."},
		{"abc", true, ""},
		{"$1a0.b05c9", true, "10.05"},
		{"007", false, "007"},
	}

	for _, tt := range tests {
		got := Sanitize(tt.raw, tt.keepCents)
		if got != tt.want {
			t.Errorf("Sanitize(%q, %v) = %q, want %q", tt.raw, tt.keepCents, got, tt.want)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"$", ""},
		{"$0", "0"},
		{"$1,234.56", "123456"},
		{"abc", ""},
	}

	for _, tt := range tests {
		got := Digits(tt.in)
		if got != tt.want {
			t.Errorf("Digits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"1000000", "1,000,000"},
		{"007", "007"},
		{"1234567890", "1,234,567,890"},
	}

	for _, tt := range tests {
		got := GroupThousands(tt.in)
		if got != tt.want {
			t.Errorf("GroupThousands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5", "5"},
		{"5.", "5"},
		{".5", "0.5"},
		{"12.99", "12.99"},
		{"007", "7"},
		{"1000000", "1000000"},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", "."} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestClamp(t *testing.T) {
	lo := decimal.Zero
	hi := decimal.NewFromInt(100)

	tests := []struct {
		in   string
		want string
	}{
		{"-5", "0"},
		{"0", "0"},
		{"50", "50"},
		{"100", "100"},
		{"500", "100"},
		{"99.99", "99.99"},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		got := Clamp(d, lo, hi)
		if got.String() != tt.want {
			t.Errorf("Clamp(%s, 0, 100) = %s, want %s", tt.in, got, tt.want)
		}

		// Clamping a clamped value must not move it again.
		again := Clamp(got, lo, hi)
		if !again.Equal(got) {
			t.Errorf("Clamp(Clamp(%s)) = %s, want %s", tt.in, again, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		cents bool
		want  string
	}{
		{"12.999", true, "12.99"},
		{"12.999", false, "12"},
		{"12.9", true, "12.9"},
		{"100", true, "100"},
		{"0.009", true, "0"},
		{"-3.7", false, "-3"},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		got := Truncate(d, tt.cents)
		if got.String() != tt.want {
			t.Errorf("Truncate(%s, %v) = %s, want %s", tt.in, tt.cents, got, tt.want)
		}
	}
}
