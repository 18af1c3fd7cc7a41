// internal/receiver/receiver.go
package receiver

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/status"
)

// Receiver validates and decodes frames written into its Handler.
// Corrupt frames are logged and dropped: the write hook is the outer
// boundary and nothing is propagated or retried from here.
type Receiver struct {
	handler *Handler
	sink    Sink

	mu   sync.Mutex
	snap status.Snapshot

	now func() time.Time
}

// New builds a receiver with a register store of size registers.
// sink may be nil.
func New(size uint16, sink Sink) *Receiver {
	r := &Receiver{
		sink: sink,
		snap: status.Snapshot{Health: status.HealthUnknown},
		now:  time.Now,
	}
	r.handler = NewHandler(size, r.onWrite)
	r.handler.SetBlock(status.BaseAddress, status.Encode(r.snap))
	return r
}

// Handler returns the Modbus request handler backing this receiver.
func (r *Receiver) Handler() *Handler { return r.handler }

// Status returns the current link status.
func (r *Receiver) Status() status.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

func (r *Receiver) onWrite(client string, regs []uint16) {
	f, err := frame.FromRegisters(regs)
	if err != nil {
		log.Printf("receiver: write dropped (client=%s): %v", client, err)
		r.record(err)
		return
	}

	log.Printf(
		"receiver: write received (client=%s) high=%d (%016b) low=%d (%016b) crc=%d (%016b)",
		client, f.High, f.High, f.Low, f.Low, f.CRC, f.CRC,
	)

	v, err := frame.DecodeValue(f)
	if err != nil {
		var ce *frame.ChecksumError
		if errors.As(err, &ce) {
			log.Printf(
				"receiver: crc mismatch (client=%s) computed=%s received=%s bits=%s",
				client, ce.Computed, ce.Received, ce.Payload,
			)
		} else {
			log.Printf("receiver: decode failed (client=%s): %v", client, err)
		}
		r.record(err)
		return
	}

	log.Printf("receiver: crc ok (client=%s) bits=%s value=%v", client, f.Payload(), v)
	r.record(nil)

	if r.sink == nil {
		return
	}

	at := r.now()
	reading := Reading{
		At:     at,
		TS:     at.Unix(),
		Client: client,
		Value:  v,
		Bits:   f.Payload(),
		CRC:    f.ReceivedCRC(),
	}
	if err := r.sink.Publish(reading); err != nil {
		log.Printf("receiver: publish failed (client=%s): %v", client, err)
	}
}

func (r *Receiver) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err == nil {
		r.snap.Accept()
	} else {
		r.snap.Reject(err)
	}
	r.handler.SetBlock(status.BaseAddress, status.Encode(r.snap))
}
