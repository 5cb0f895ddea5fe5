// Package model defines the decoded explorer domain model.
package model

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/tfexplorer-parser/pkg/safe"
	"github.com/shopspring/decimal"
)

// ErrPrecisionMismatch is returned when combining amounts of different precision.
var ErrPrecisionMismatch = errors.New("currency precision mismatch")

// Currency is a fixed-precision amount: the displayed value is raw / 10^precision.
// The zero value is a zero amount with precision 0.
type Currency struct {
	raw       *big.Int
	precision uint
}

// NewCurrency copies raw and pairs it with the given precision.
func NewCurrency(raw *big.Int, precision uint) Currency {
	c := Currency{precision: precision}
	if raw != nil {
		c.raw = new(big.Int).Set(raw)
	}
	return c
}

// NewCurrencyFromUint64 builds a Currency from a native integer.
func NewCurrencyFromUint64(raw uint64, precision uint) Currency {
	return Currency{raw: new(big.Int).SetUint64(raw), precision: precision}
}

// ParseCurrency parses a base-10 integer string. An empty string is zero.
func ParseCurrency(s string, precision uint) (Currency, error) {
	if s == "" {
		return Currency{raw: new(big.Int), precision: precision}, nil
	}
	raw, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Currency{}, fmt.Errorf("parse currency %q: not an integer", s)
	}
	return Currency{raw: raw, precision: precision}, nil
}

// Raw returns a copy of the unscaled integer.
func (c Currency) Raw() *big.Int {
	if c.raw == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.raw)
}

// Precision returns the number of decimal digits.
func (c Currency) Precision() uint {
	return c.precision
}

// Scale returns 10^precision.
func (c Currency) Scale() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(c.precision)), nil)
}

// IsZero reports whether the amount is zero.
func (c Currency) IsZero() bool {
	return c.raw == nil || c.raw.Sign() == 0
}

// Add returns c+o computed on the raw integers.
func (c Currency) Add(o Currency) (Currency, error) {
	if c.precision != o.precision {
		return Currency{}, fmt.Errorf("%w: %d != %d", ErrPrecisionMismatch, c.precision, o.precision)
	}
	sum := new(big.Int).Add(c.Raw(), o.raw0())
	return Currency{raw: sum, precision: c.precision}, nil
}

// Cmp compares raw amounts; precision must match for the result to be meaningful.
func (c Currency) Cmp(o Currency) int {
	return c.raw0().Cmp(o.raw0())
}

// Equal reports whether both raw amount and precision are equal.
func (c Currency) Equal(o Currency) bool {
	return c.precision == o.precision && c.Cmp(o) == 0
}

// Decimal returns the scaled value as an exact decimal.
func (c Currency) Decimal() decimal.Decimal {
	exp, err := safe.Int32(c.precision)
	if err != nil {
		return decimal.NewFromBigInt(c.raw0(), 0)
	}
	return decimal.NewFromBigInt(c.raw0(), -exp)
}

// String renders raw / scale without trailing zeros.
func (c Currency) String() string {
	return c.Decimal().String()
}

// MarshalJSON encodes the scaled value as a JSON string.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c Currency) raw0() *big.Int {
	if c.raw == nil {
		return new(big.Int)
	}
	return c.raw
}
