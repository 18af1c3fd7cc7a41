// internal/ieee754/ieee754.go
//
// Package ieee754 converts single-precision values to and from their
// sign/exponent/mantissa bit string by arithmetic alone.
// No bit reinterpretation is used anywhere in this package.
//
// Layout:
//
//	0          10000001        01110000000000000000000
//	sign(1)    exponent(8)     mantissa(23)
package ieee754

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tamzrod/floatlink/internal/bits"
)

// ErrRangeOverflow reports a value whose biased exponent does not fit
// the normal single-precision range.
var ErrRangeOverflow = errors.New("exponent out of range")

const (
	bias          = 127
	exponentWidth = 8
	mantissaWidth = 23

	// Biased exponents 0 and 255 encode subnormals and inf/NaN; neither is produced.
	minBiased = 1
	maxBiased = 254
)

// zero is the fixed representation of 0 and -0.
var zero = strings.Repeat("0", bits.PayloadWidth)

// Encode returns the 32-character bit string of v.
// The mantissa is truncated after 23 bits, not rounded.
func Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v has no finite encoding", bits.ErrInvalidInput, v)
	}
	if v == 0 {
		return zero, nil
	}

	sign := "0"
	if v < 0 {
		sign = "1"
		v = -v
	}

	// binary scientific notation: v = m * 2^exp, 1 <= m < 2
	exp := 0
	m := v
	for m >= 2.0 {
		m /= 2.0
		exp++
	}
	for m < 1.0 {
		m *= 2.0
		exp--
	}

	biased := exp + bias
	if biased < minBiased || biased > maxBiased {
		return "", fmt.Errorf("%w: %v needs biased exponent %d", ErrRangeOverflow, v, biased)
	}

	var sb strings.Builder
	sb.Grow(bits.PayloadWidth)
	sb.WriteString(sign)
	sb.WriteString(bits.FromUint(uint64(biased), exponentWidth))

	// multiply-by-2 expansion of the fraction
	frac := m - 1.0
	for i := 0; i < mantissaWidth; i++ {
		frac *= 2
		if frac >= 1.0 {
			sb.WriteByte('1')
			frac -= 1.0
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String(), nil
}

// Decode converts a 32-character bit string back to a value.
func Decode(s string) (float64, error) {
	if err := bits.Validate(s, bits.PayloadWidth); err != nil {
		return 0, err
	}
	if s == zero {
		return 0, nil
	}

	sign := 1.0
	if s[0] == '1' {
		sign = -1.0
	}

	field, err := bits.ToUint(s[1 : 1+exponentWidth])
	if err != nil {
		return 0, err
	}
	exp := int(field) - bias

	m := 1.0
	weight := 1.0
	for _, b := range s[1+exponentWidth:] {
		weight /= 2
		if b == '1' {
			m += weight
		}
	}

	return sign * math.Ldexp(m, exp), nil
}
