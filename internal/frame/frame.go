// internal/frame/frame.go
package frame

import (
	"fmt"

	"github.com/tamzrod/floatlink/internal/bits"
	"github.com/tamzrod/floatlink/internal/crc4"
	"github.com/tamzrod/floatlink/internal/ieee754"
)

// Frame is one register triple as it travels on the wire.
// It lives for a single exchange only.
type Frame struct {
	High uint16
	Low  uint16
	CRC  uint16
}

// Registers returns the frame in wire order.
func (f Frame) Registers() []uint16 {
	regs := make([]uint16, RegistersPerFrame)

	regs[SlotHighWord] = f.High
	regs[SlotLowWord] = f.Low
	regs[SlotCRC] = f.CRC

	return regs
}

// FromRegisters reads a frame from the first RegistersPerFrame entries of regs.
func FromRegisters(regs []uint16) (Frame, error) {
	if len(regs) < RegistersPerFrame {
		return Frame{}, fmt.Errorf("%w: frame needs %d registers, got %d",
			bits.ErrInvalidInput, RegistersPerFrame, len(regs))
	}
	return Frame{
		High: regs[SlotHighWord],
		Low:  regs[SlotLowWord],
		CRC:  regs[SlotCRC],
	}, nil
}

// Payload returns the 32 payload bits, high word first.
func (f Frame) Payload() string {
	return bits.FromUint(uint64(f.High), bits.RegisterWidth) +
		bits.FromUint(uint64(f.Low), bits.RegisterWidth)
}

// ReceivedCRC returns the 4 checksum bits carried by the frame.
func (f Frame) ReceivedCRC() string {
	return bits.FromUint(uint64(f.CRC&CRCMask), bits.CRCWidth)
}

// Pack splits payload into high/low words and places crc in the low
// 4 bits of the third register. No IO. No side effects.
func Pack(payload, crc string) (Frame, error) {
	if err := bits.Validate(payload, bits.PayloadWidth); err != nil {
		return Frame{}, fmt.Errorf("frame payload: %w", err)
	}
	if err := bits.Validate(crc, bits.CRCWidth); err != nil {
		return Frame{}, fmt.Errorf("frame crc: %w", err)
	}

	hi, _ := bits.ToUint(payload[:bits.RegisterWidth])
	lo, _ := bits.ToUint(payload[bits.RegisterWidth:])
	c, _ := bits.ToUint(crc)

	return Frame{
		High: uint16(hi),
		Low:  uint16(lo),
		CRC:  uint16(c),
	}, nil
}

// Unpack rebuilds the payload in the same word order as Pack and
// verifies it against the carried CRC. On mismatch it returns a
// *ChecksumError and the payload must not be decoded.
func Unpack(f Frame) (payload, crc string, err error) {
	payload = f.Payload()
	crc = f.ReceivedCRC()

	computed, err := crc4.Compute(payload, crc4.DefaultPolynomial)
	if err != nil {
		return "", "", err
	}
	if computed != crc {
		return "", "", &ChecksumError{
			Payload:  payload,
			Computed: computed,
			Received: crc,
		}
	}
	return payload, crc, nil
}

// EncodeValue runs encode, checksum and pack.
func EncodeValue(v float64) (Frame, error) {
	payload, err := ieee754.Encode(v)
	if err != nil {
		return Frame{}, err
	}
	crc, err := crc4.Compute(payload, crc4.DefaultPolynomial)
	if err != nil {
		return Frame{}, err
	}
	return Pack(payload, crc)
}

// DecodeValue runs unpack, checksum verification and decode.
func DecodeValue(f Frame) (float64, error) {
	payload, _, err := Unpack(f)
	if err != nil {
		return 0, err
	}
	return ieee754.Decode(payload)
}
