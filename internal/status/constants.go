// internal/status/constants.go
package status

// Link status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// BaseAddress is the first holding register of the status block.
// Address 3 is left free between the frame and the block.
const BaseAddress = 4

// SlotsPerBlock is the fixed number of registers in the status block.
const SlotsPerBlock = 4

// ---- SLOT INDICES ----

// SlotHealthCode holds the health of the last processed frame.
const SlotHealthCode = 0

// SlotLastErrorCode holds the code of the last rejected frame.
const SlotLastErrorCode = 1

// SlotFramesAccepted counts frames that passed the checksum and decoded.
const SlotFramesAccepted = 2

// SlotFramesRejected counts frames that were logged and dropped.
const SlotFramesRejected = 3

// ---- LIMITS ----

// CounterMax is where the frame counters stop. They never wrap.
const CounterMax uint16 = 65535

// ---- HEALTH CODES ----

// HealthUnknown represents the state before any frame was written.
const HealthUnknown uint16 = 0

// HealthOK represents a last frame that was accepted.
const HealthOK uint16 = 1

// HealthError represents a last frame that was rejected.
const HealthError uint16 = 2

// ---- ERROR CODES ----

// CodeNone means no error.
const CodeNone uint16 = 0

// CodeGeneric is used for errors without a more specific code.
const CodeGeneric uint16 = 1

// CodeInvalidInput marks malformed bit strings or register blocks.
const CodeInvalidInput uint16 = 2

// CodeChecksumMismatch marks a CRC4 mismatch.
const CodeChecksumMismatch uint16 = 3

// CodeRangeOverflow marks an exponent outside the normal range.
const CodeRangeOverflow uint16 = 4
