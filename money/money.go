// Package money converts the loosely typed numeric text stored on records
// into numbers, and numbers back into display strings.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol is prefixed to every formatted amount.
const Symbol = "₹"

var printer = message.NewPrinter(language.English)

// ParseDecimal reads an amount or quantity as entered on a record.
// Surrounding spaces, thousands separators and a leading currency symbol are
// ignored. Anything that still is not a number yields zero; it never fails.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, Symbol)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Parse is ParseDecimal as a float64, for aggregation arithmetic. Values
// outside the float64 range yield zero like any other unusable text.
func Parse(s string) float64 {
	return Finite(ParseDecimal(s).InexactFloat64())
}

// Finite returns v, or zero when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Clamp keeps an aggregated figure encodable: NaN becomes zero and an
// overflowed sum saturates at the largest float64 of the same sign.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// IsNumber reports whether s holds a parseable number.
func IsNumber(s string) bool {
	s = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(s), Symbol), ",", "")
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}

// MaxAmount bounds the amounts and quantities accepted on records.
var MaxAmount = decimal.New(1, 15)

// CheckAmount rejects a negative or out of range number in field. Text that
// is not a number passes; it reads as zero.
func CheckAmount(field, s string) error {
	if !IsNumber(s) {
		return nil
	}
	d := ParseDecimal(s)
	if d.IsNegative() {
		return fmt.Errorf("%s must not be negative", field)
	}
	if d.GreaterThan(MaxAmount) {
		return fmt.Errorf("%s is out of range", field)
	}
	return nil
}

// Format renders an amount with two decimals and digit grouping, e.g. ₹175,000.00.
func Format(v float64) string {
	return Symbol + printer.Sprintf("%.2f", Finite(v))
}

// FormatWhole renders an amount rounded to whole units, e.g. ₹175,000.
func FormatWhole(v float64) string {
	return Symbol + printer.Sprintf("%d", decimal.NewFromFloat(Finite(v)).Round(0).IntPart())
}

// FormatDecimal renders an exact decimal amount like Format.
func FormatDecimal(d decimal.Decimal) string {
	return Format(d.Round(2).InexactFloat64())
}

// Quantity renders a carat or piece count without trailing zeros.
func Quantity(v float64) string {
	return decimal.NewFromFloat(Finite(v)).String()
}
