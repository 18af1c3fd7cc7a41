// internal/receiver/handler.go
package receiver

import (
	"sync"

	"github.com/simonvetter/modbus"

	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/status"
)

// Hook is called synchronously after every client write that touches
// the frame block. regs is a private snapshot of the whole register block.
type Hook func(client string, regs []uint16)

// Handler is the holding-register store served over Modbus TCP.
// It implements modbus.RequestHandler.
// Only holding registers exist; the status block is read-only for clients.
type Handler struct {
	mu   sync.Mutex
	regs []uint16
	hook Hook
}

var _ modbus.RequestHandler = (*Handler)(nil)

// NewHandler creates a store of size registers, all zero.
func NewHandler(size uint16, hook Hook) *Handler {
	return &Handler{
		regs: make([]uint16, size),
		hook: hook,
	}
}

func (h *Handler) HandleCoils(req *modbus.CoilsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

func (h *Handler) HandleDiscreteInputs(req *modbus.DiscreteInputsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

func (h *Handler) HandleInputRegisters(req *modbus.InputRegistersRequest) ([]uint16, error) {
	return nil, modbus.ErrIllegalFunction
}

// HandleHoldingRegisters serves FC3/FC6/FC16.
func (h *Handler) HandleHoldingRegisters(req *modbus.HoldingRegistersRequest) ([]uint16, error) {
	start := int(req.Addr)
	end := start + int(req.Quantity)

	if req.Quantity == 0 || end > len(h.regs) {
		return nil, modbus.ErrIllegalDataAddress
	}

	if req.IsWrite {
		if overlaps(start, end, status.BaseAddress, status.BaseAddress+status.SlotsPerBlock) {
			return nil, modbus.ErrIllegalDataAddress
		}

		h.mu.Lock()
		copy(h.regs[start:end], req.Args)
		snap := append([]uint16(nil), h.regs...)
		h.mu.Unlock()

		if h.hook != nil && overlaps(start, end, 0, frame.RegistersPerFrame) {
			h.hook(req.ClientAddr, snap)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]uint16(nil), h.regs[start:end]...), nil
}

// SetBlock stores vals at addr without calling the hook.
// Values past the end of the store are dropped.
func (h *Handler) SetBlock(addr uint16, vals []uint16) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if int(addr) >= len(h.regs) {
		return
	}
	copy(h.regs[addr:], vals)
}

// Snapshot returns a copy of the whole register block.
func (h *Handler) Snapshot() []uint16 {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]uint16(nil), h.regs...)
}

// overlaps reports whether [a0,a1) and [b0,b1) intersect.
func overlaps(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}
