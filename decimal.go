package bmi

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const DecimalPrecision = 2

var decimalScale = int64(math.Pow10(DecimalPrecision))

// Decimal is a fixed precision number with two fractional digits, stored as
// hundredths.
type Decimal struct {
	Data int64
}

func NewDecimal(hundredths int64) Decimal {
	return Decimal{Data: hundredths}
}

// NewDecimalFromFloat rounds f to two decimals, halves away from zero.
func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{Data: int64(math.Round(f * float64(decimalScale)))}
}

func ParseDecimal(str string) (Decimal, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("parse decimal %q: %w", str, err)
	}
	return NewDecimalFromFloat(f), nil
}

func (d Decimal) Float64() float64 {
	return float64(d.Data) / float64(decimalScale)
}

func (d Decimal) IntFrac() (int64, int64) {
	return d.Data / decimalScale, d.Data % decimalScale
}

func (d Decimal) String() string {
	intPart, fracPart := d.IntFrac()
	sign := ""
	if d.Data < 0 {
		sign = "-"
		intPart, fracPart = -intPart, -fracPart
	}
	return fmt.Sprintf("%s%d.%0*d", sign, intPart, DecimalPrecision, fracPart)
}

// DivideInt divides by n and rounds the quotient back to two decimals.
func (d Decimal) DivideInt(n int64) Decimal {
	return Decimal{Data: int64(math.Round(float64(d.Data) / float64(n)))}
}

func (d Decimal) Cmp(other Decimal) int {
	switch {
	case d.Data < other.Data:
		return -1
	case d.Data > other.Data:
		return 1
	}
	return 0
}

func (d *Decimal) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*d = NewDecimal(v)
	case float64:
		*d = NewDecimalFromFloat(v)
	case string:
		parsed, err := ParseDecimal(v)
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Decimal", src)
	}
	return nil
}

func (d Decimal) Value() (driver.Value, error) {
	return d.Data, nil
}
