// internal/bits/bits.go
package bits

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a bit string of the wrong length or with
// characters other than '0' and '1'.
var ErrInvalidInput = errors.New("invalid input")

// Fixed widths used across the frame.
const (
	PayloadWidth  = 32
	CRCWidth      = 4
	RegisterWidth = 16
)

// Validate checks that s has exactly n characters, all '0' or '1'.
// n < 0 skips the length check.
func Validate(s string, n int) error {
	if n >= 0 && len(s) != n {
		return fmt.Errorf("%w: want %d bits, got %d", ErrInvalidInput, n, len(s))
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: bit %d is %q", ErrInvalidInput, i, s[i])
		}
	}
	return nil
}

// FromUint renders the low width bits of v, most significant first.
func FromUint(v uint64, width int) string {
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = '0' + byte(v&1)
		v >>= 1
	}
	return string(out)
}

// ToUint parses a bit string of at most 64 characters, most significant first.
func ToUint(s string) (uint64, error) {
	if len(s) > 64 {
		return 0, fmt.Errorf("%w: %d bits do not fit in 64", ErrInvalidInput, len(s))
	}
	if err := Validate(s, -1); err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v<<1 | uint64(s[i]-'0')
	}
	return v, nil
}

// Flip returns s with the bit at index i inverted.
func Flip(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}
