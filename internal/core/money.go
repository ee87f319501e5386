// Package core provides money parsing and handling utilities.
//
// Amounts are kept as integer cents. Conversions to and from the REAL
// columns of the database and from user input go through decimal
// arithmetic so that rounding is always half-up on the third decimal place.
package core

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in cents. The sign carries meaning for records.
type Money struct {
	Cents int64
}

var (
	amountShape = regexp.MustCompile(`^\d*(\.\d*)?$`)
	// Keeps cents*100 well inside int64.
	maxAmount = decimal.New(1, 15)
)

// ParseAmount converts a user-typed decimal string to a positive Money.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and performs
// half-up rounding on the third decimal place. Signs are rejected: the entry
// kind decides the sign, not the text.
//
// Examples:
//
//	ParseAmount("12.34")  -> 1234 cents
//	ParseAmount("12,345") -> 1235 cents
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || !amountShape.MatchString(s) || strings.Trim(s, ".") == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return Money{}, ErrInvalidAmount
	}
	m := FromDecimal(d)
	if !m.IsPositive() {
		return Money{}, ErrInvalidAmount
	}
	return m, nil
}

// FromDecimal rounds d to cents.
func FromDecimal(d decimal.Decimal) Money {
	return Money{Cents: d.Round(2).Shift(2).IntPart()}
}

// FromFloat converts a value read from a REAL column.
func FromFloat(f float64) Money {
	return FromDecimal(decimal.NewFromFloat(f))
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Float64 returns the value for storage in a REAL column.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalText renders the amount with two decimals, for json and yaml output.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(b []byte) error {
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return ErrInvalidAmount
	}
	*m = FromDecimal(d)
	return nil
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }
func (m Money) Neg() Money        { return Money{Cents: -m.Cents} }

func (m Money) Abs() Money {
	if m.Cents < 0 {
		return m.Neg()
	}
	return m
}

func (m Money) IsZero() bool     { return m.Cents == 0 }
func (m Money) IsNegative() bool { return m.Cents < 0 }
func (m Money) IsPositive() bool { return m.Cents > 0 }
