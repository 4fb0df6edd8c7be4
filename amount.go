package moneyfmt

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// Amount is a monetary amount held in minor units of its currency, e.g.
// 123456 with USD is 1234.56 dollars.
type Amount struct {
	Minor    int64
	Currency currency.Unit
}

// NewAmount returns an amount of minor units in the ISO 4217 currency code.
func NewAmount(minor int64, code string) (Amount, error) {
	cur, err := currency.ParseISO(code)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: currency %q: %s", ErrInvalidAmount, code, err)
	}
	return Amount{Minor: minor, Currency: cur}, nil
}

// ParseAmount parses a decimal string such as "-1234.5" in the given
// currency. It rejects more fractional digits than the currency allows.
func ParseAmount(s, code string) (Amount, error) {
	a, err := NewAmount(0, code)
	if err != nil {
		return Amount{}, err
	}
	scale := a.Scale()

	num := strings.TrimSpace(s)
	neg := false
	switch {
	case strings.HasPrefix(num, "-"):
		neg = true
		num = num[1:]
	case strings.HasPrefix(num, "+"):
		num = num[1:]
	}
	whole, frac, _ := strings.Cut(num, ".")
	if whole == "" && frac == "" {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(frac) > scale {
		return Amount{}, fmt.Errorf("%w: %q has more than %d fractional digits for %s", ErrInvalidAmount, s, scale, a.Currency)
	}
	digits := whole + frac + strings.Repeat("0", scale-len(frac))
	if strings.ContainsFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	// Parse with the sign so math.MinInt64 stays in range.
	if neg {
		digits = "-" + digits
	}
	minor, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %s", ErrInvalidAmount, s, err)
	}
	a.Minor = minor
	return a, nil
}

// Scale returns the number of fractional digits of the currency.
func (a Amount) Scale() int {
	scale, _ := currency.Standard.Rounding(a.Currency)
	return scale
}

// String returns the ISO code and the plain decimal value, e.g. "USD 1234.56".
func (a Amount) String() string {
	neg, whole, frac := a.split()
	s := a.Currency.String() + " "
	if neg {
		s += "-"
	}
	s += whole
	if frac != "" {
		s += "." + frac
	}
	return s
}

// split returns the sign and the integer and fractional digits of a.
func (a Amount) split() (neg bool, whole, frac string) {
	neg = a.Minor < 0
	abs := uint64(a.Minor)
	if neg {
		abs = -abs
	}
	digits := strconv.FormatUint(abs, 10)
	scale := a.Scale()
	if scale == 0 {
		return neg, digits, ""
	}
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	cut := len(digits) - scale
	return neg, digits[:cut], digits[cut:]
}

func (a Amount) valid() bool { return a.Currency != currency.Unit{} }
