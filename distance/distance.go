package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Multiplicand is the number of distance units in one mile.
const Multiplicand = 1000

// Sentinel errors for distance conversion.
var (
	// ErrMalformed indicates that the input is not a decimal number.
	ErrMalformed = errors.New("distance: malformed decimal")

	// ErrExcessPrecision indicates that the input is more detailed than
	// one-thousandth of a mile.
	ErrExcessPrecision = errors.New("distance: excess precision")

	// ErrOutOfRange indicates that the scaled value overflows int64.
	ErrOutOfRange = errors.New("distance: value out of range")
)

// scaleDigits is log10(Multiplicand); maxScaledDigits is the largest n with
// 10^n <= math.MaxInt64.
const (
	scaleDigits     = 3
	maxScaledDigits = 18
)

var (
	multiplicand = decimal.NewFromInt(Multiplicand)
	maxScaled    = decimal.NewFromInt(math.MaxInt64)
	minScaled    = decimal.NewFromInt(math.MinInt64)
)

// ExcessPrecisionError reports a distance literal that cannot be represented
// losslessly in thousandths of a mile.
type ExcessPrecisionError struct {
	// Value is the literal as it was passed to Parse.
	Value string
}

func (e *ExcessPrecisionError) Error() string {
	return fmt.Sprintf("distance: the distance (%s) is too detailed", e.Value)
}

// Is lets errors.Is(err, ErrExcessPrecision) match.
func (e *ExcessPrecisionError) Is(target error) bool { return target == ErrExcessPrecision }

// Parse converts a decimal-mile literal into thousandths of a mile.
//
// Steps:
//  1. Parse the literal as an arbitrary-precision decimal.
//  2. Bound the exponent against the coefficient length, so "1e999999999"
//     and "1e-999999999" are rejected without materializing 10^exp.
//  3. Multiply by Multiplicand.
//  4. Reject any non-zero fraction left after scaling (ExcessPrecisionError).
//  5. Reject values outside the int64 range.
//
// Complexity: O(len(s)).
func Parse(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}

	if d.IsZero() {
		return 0, nil
	}

	// |d| >= 10^(digits-1+exp), so the scaled magnitude needs at least
	// digits+exp+scaleDigits decimal digits.
	exp, digits := int(d.Exponent()), d.NumDigits()
	if digits-1+exp+scaleDigits > maxScaledDigits {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	// A non-zero coefficient has fewer than digits trailing zeros, so a
	// fraction finer than one thousandth cannot cancel out.
	if -exp-scaleDigits > digits {
		return 0, &ExcessPrecisionError{Value: s}
	}

	scaled := d.Mul(multiplicand)
	if !scaled.IsInteger() {
		return 0, &ExcessPrecisionError{Value: s}
	}
	if scaled.GreaterThan(maxScaled) || scaled.LessThan(minScaled) {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return scaled.IntPart(), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures only.
func MustParse(s string) int64 {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Format renders thousandths of a mile as a decimal-mile string with exactly
// three fractional digits, e.g. Format(2500) == "2.500".
func Format(d int64) string {
	return decimal.New(d, -3).StringFixed(3)
}
