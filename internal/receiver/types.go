// internal/receiver/types.go
package receiver

import "time"

// Reading is one accepted frame.
type Reading struct {
	At     time.Time `json:"-"`
	TS     int64     `json:"ts"`
	Client string    `json:"client,omitempty"`
	Value  float64   `json:"value"`
	Bits   string    `json:"bits"`
	CRC    string    `json:"crc"`
}

// Sink receives accepted readings. Errors are logged, never retried.
type Sink interface {
	Publish(r Reading) error
}
