// internal/status/snapshot.go
package status

// Snapshot is the receiver's link status as exposed to Modbus clients.
// LastErrorCode keeps the last rejection even after later frames are accepted.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	FramesAccepted uint16
	FramesRejected uint16
}

// Accept records an accepted frame.
func (s *Snapshot) Accept() {
	s.Health = HealthOK
	if s.FramesAccepted < CounterMax {
		s.FramesAccepted++
	}
}

// Reject records a dropped frame and the code of its error.
func (s *Snapshot) Reject(err error) {
	s.Health = HealthError
	s.LastErrorCode = CodeFor(err)
	if s.FramesRejected < CounterMax {
		s.FramesRejected++
	}
}
