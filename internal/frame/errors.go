// internal/frame/errors.go
package frame

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch reports a frame whose recomputed CRC4 differs
// from the received one.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ChecksumError carries the bits involved in a mismatch for diagnostics.
type ChecksumError struct {
	Payload  string // 32 bits used for the CRC
	Computed string
	Received string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed=%s received=%s payload=%s",
		e.Computed, e.Received, e.Payload)
}

func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
