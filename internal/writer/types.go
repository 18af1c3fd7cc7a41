// internal/writer/types.go
package writer

import "github.com/tamzrod/floatlink/internal/frame"

// Plan is the fully-built write plan for one sender.
type Plan struct {
	Target  string // endpoint or serial port, for messages only
	UnitID  uint8
	Address uint16 // first register of the frame
}

// Sender encodes values and delivers them as frames.
type Sender interface {
	Send(v float64) (frame.Frame, error)
}
