// internal/writer/writer.go
package writer

import (
	"fmt"

	"github.com/tamzrod/floatlink/internal/frame"
)

//go:generate mockgen -source=writer.go -destination=mock_endpoint_client_test.go -package=writer

// endpointClient is the exact contract the sender uses.
// It is the "write N registers at an address" collaborator.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

type senderImpl struct {
	plan   Plan
	client endpointClient
}

func New(plan Plan, client endpointClient) Sender {
	return &senderImpl{
		plan:   plan,
		client: client,
	}
}

// Send encodes v and writes the frame in one request.
// The frame is returned even when the write fails so callers can report it.
// No retries.
func (s *senderImpl) Send(v float64) (frame.Frame, error) {
	f, err := frame.EncodeValue(v)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("writer: encode %v: %w", v, err)
	}

	if s.client == nil {
		return f, fmt.Errorf("writer: missing client for %s", s.plan.Target)
	}

	if err := s.client.WriteRegisters(s.plan.UnitID, s.plan.Address, f.Registers()); err != nil {
		return f, fmt.Errorf(
			"writer: target=%s unit=%d addr=%d err=%w",
			s.plan.Target, s.plan.UnitID, s.plan.Address, err,
		)
	}

	return f, nil
}
