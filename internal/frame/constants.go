// internal/frame/constants.go
package frame

// Frame layout constants.
// These values define the wire protocol and MUST NOT be configurable.

// ---- FRAME GEOMETRY ----

// RegistersPerFrame is the fixed number of holding registers per frame.
const RegistersPerFrame = 3

// ---- SLOT INDICES ----

// SlotHighWord holds payload bits 0..15 (sign, exponent, top of mantissa).
const SlotHighWord = 0

// SlotLowWord holds payload bits 16..31.
const SlotLowWord = 1

// SlotCRC holds the CRC4 remainder in its low 4 bits.
const SlotCRC = 2

// ---- MASKS ----

// CRCMask selects the checksum bits of the CRC register.
// The upper 12 bits are written as zero and ignored on receipt.
const CRCMask uint16 = 0x000F
