// internal/status/codes.go
package status

import (
	"errors"

	"github.com/tamzrod/floatlink/internal/bits"
	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/ieee754"
)

// CodeFor maps an error to its status code without assuming concrete types.
// Errors exposing Code() uint16 keep their own code.
// If nothing matches, returns CodeGeneric.
func CodeFor(err error) uint16 {
	if err == nil {
		return CodeNone
	}

	switch {
	case errors.Is(err, frame.ErrChecksumMismatch):
		return CodeChecksumMismatch
	case errors.Is(err, ieee754.ErrRangeOverflow):
		return CodeRangeOverflow
	case errors.Is(err, bits.ErrInvalidInput):
		return CodeInvalidInput
	}

	type coder interface{ Code() uint16 }
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return CodeGeneric
}
