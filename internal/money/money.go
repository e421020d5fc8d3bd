// Package money implements the text and number rules shared by the moneyinput
// component: reducing raw keyboard input to a canonical numeric string,
// regrouping digits for display, and settling exact values within a range.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sanitize reduces raw input text to its canonical numeric form: ASCII digits
// and, in cents mode, at most one decimal point followed by at most two
// fraction digits. Extra fraction digits are dropped, never rounded. A second
// point ends the scan; in integer mode the first point does.
func Sanitize(raw string, keepCents bool) string {
	var intPart, fracPart strings.Builder
	seenDot := false

scan:
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			if !seenDot {
				intPart.WriteRune(r)
			} else if fracPart.Len() < 2 {
				fracPart.WriteRune(r)
			}
		case r == '.':
			if !keepCents || seenDot {
				break scan
			}
			seenDot = true
		}
	}

	if !seenDot {
		return intPart.String()
	}
	return intPart.String() + "." + fracPart.String()
}

// Digits returns only the digit runes of s. A display that has no digits left
// in it (empty, or just a currency sign) counts as nothing typed.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GroupThousands inserts a comma before every group of three digits, counting
// from the right. The input must be digits only.
func GroupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Parse converts canonical text into an exact decimal. A trailing point is
// ignored ("5." parses as 5) and a bare fraction gets its zero back (".5"
// parses as 0.5). A lone point or an empty string is an error; callers keep
// their previous value in that case.
func Parse(canonical string) (decimal.Decimal, error) {
	s := strings.TrimSuffix(canonical, ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("no digits in %q", canonical)
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return decimal.NewFromString(s)
}

// Clamp returns d limited to the closed range [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

// Truncate cuts d toward zero: two fraction digits in cents mode, none
// otherwise. 12.999 truncates to 12.99, not 13.00.
func Truncate(d decimal.Decimal, cents bool) decimal.Decimal {
	if cents {
		return d.Truncate(2)
	}
	return d.Truncate(0)
}
