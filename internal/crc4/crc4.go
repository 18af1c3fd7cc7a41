// internal/crc4/crc4.go
package crc4

import (
	"fmt"

	"github.com/tamzrod/floatlink/internal/bits"
)

// DefaultPolynomial is x^4 + x + 1.
const DefaultPolynomial = "10011"

const minPolyWidth = 5

// Compute returns the 4-bit remainder of data, with four zero bits
// appended, divided by poly using bit-serial XOR long division.
// The leftmost poly bit aligns with each '1' found while scanning.
func Compute(data, poly string) (string, error) {
	if err := bits.Validate(data, -1); err != nil {
		return "", fmt.Errorf("crc4 data: %w", err)
	}
	if len(poly) < minPolyWidth {
		return "", fmt.Errorf("crc4 polynomial: %w: want at least %d bits, got %d",
			bits.ErrInvalidInput, minPolyWidth, len(poly))
	}
	if err := bits.Validate(poly, -1); err != nil {
		return "", fmt.Errorf("crc4 polynomial: %w", err)
	}

	buf := []byte(data + "0000")

	// only positions with a full polynomial window
	for i := 0; i+len(poly) <= len(buf); i++ {
		if buf[i] != '1' {
			continue
		}
		for j := 0; j < len(poly); j++ {
			buf[i+j] = '0' + ((buf[i+j] - '0') ^ (poly[j] - '0'))
		}
	}

	return string(buf[len(buf)-bits.CRCWidth:]), nil
}

// Checksum is Compute with DefaultPolynomial, as a number in 0..15.
func Checksum(data string) (uint8, error) {
	s, err := Compute(data, DefaultPolynomial)
	if err != nil {
		return 0, err
	}
	v, err := bits.ToUint(s)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
