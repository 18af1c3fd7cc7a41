// internal/receiver/receiver_test.go
package receiver

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/simonvetter/modbus"

	"github.com/tamzrod/floatlink/internal/status"
)

type fakeSink struct {
	mu  sync.Mutex
	got []Reading
	err error
}

func (f *fakeSink) Publish(r Reading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, r)
	return f.err
}

func (f *fakeSink) readings() []Reading {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Reading(nil), f.got...)
}

func writeFrame(t *testing.T, r *Receiver, regs []uint16) {
	t.Helper()
	_, err := r.Handler().HandleHoldingRegisters(&modbus.HoldingRegistersRequest{
		ClientAddr: "test",
		Addr:       0,
		Quantity:   uint16(len(regs)),
		IsWrite:    true,
		Args:       regs,
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestReceiver_AcceptsValidFrame(t *testing.T) {
	sink := &fakeSink{}
	r := New(10, sink)
	r.now = func() time.Time { return time.Unix(1700000000, 0) }

	writeFrame(t, r, []uint16{16568, 0, 4})

	st := r.Status()
	if st.Health != status.HealthOK || st.FramesAccepted != 1 || st.FramesRejected != 0 {
		t.Fatalf("status = %+v", st)
	}

	if len(sink.got) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(sink.got))
	}
	got := sink.got[0]
	if got.Value != 5.75 || got.Bits != "01000000101110000000000000000000" || got.CRC != "0100" {
		t.Fatalf("reading = %+v", got)
	}
	if got.TS != 1700000000 || got.Client != "test" {
		t.Fatalf("reading = %+v", got)
	}

	// status block mirrors the snapshot
	regs := r.Handler().Snapshot()
	want := status.Encode(st)
	for i := range want {
		if regs[status.BaseAddress+i] != want[i] {
			t.Fatalf("status slot %d: got=%d want=%d", i, regs[status.BaseAddress+i], want[i])
		}
	}
}

func TestReceiver_DropsCorruptFrame(t *testing.T) {
	sink := &fakeSink{}
	r := New(10, sink)

	// 5.75 with one bit flipped in the low word
	writeFrame(t, r, []uint16{16568, 1, 4})

	st := r.Status()
	if st.Health != status.HealthError || st.LastErrorCode != status.CodeChecksumMismatch || st.FramesRejected != 1 {
		t.Fatalf("status = %+v", st)
	}
	if len(sink.got) != 0 {
		t.Fatalf("corrupt frame must not be published")
	}
}

func TestReceiver_RecoversAfterCorruptFrame(t *testing.T) {
	r := New(10, nil)

	writeFrame(t, r, []uint16{16568, 1, 4})
	writeFrame(t, r, []uint16{16568, 0, 4})

	st := r.Status()
	if st.Health != status.HealthOK || st.FramesAccepted != 1 || st.FramesRejected != 1 {
		t.Fatalf("status = %+v", st)
	}
	if st.LastErrorCode != status.CodeChecksumMismatch {
		t.Fatalf("last error should survive recovery, got %d", st.LastErrorCode)
	}
}

func TestReceiver_SinkErrorIsSwallowed(t *testing.T) {
	sink := &fakeSink{err: errors.New("broker down")}
	r := New(10, sink)

	writeFrame(t, r, []uint16{16568, 0, 4})

	if st := r.Status(); st.Health != status.HealthOK {
		t.Fatalf("publish failure must not reject the frame: %+v", st)
	}
}

func TestReceiver_InitialStatus(t *testing.T) {
	r := New(10, nil)

	regs := r.Handler().Snapshot()
	if regs[status.BaseAddress+status.SlotHealthCode] != status.HealthUnknown {
		t.Fatalf("initial health = %d", regs[status.BaseAddress])
	}
}
