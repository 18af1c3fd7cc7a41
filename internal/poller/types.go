// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/floatlink/internal/frame"
)

// PollResult is what one poll cycle saw.
type PollResult struct {
	Name string
	At   time.Time

	// Raw is the frame as read. Zero when the read itself failed.
	Raw frame.Frame

	// Value is valid only when Err is nil.
	Value float64

	Err error // read, checksum or decode failure
}
