// internal/status/constants.go
package status

// Device Status Block layout constants.
// Offsets are bytes inside the status data block.
// These values define the protocol and MUST NOT be configurable.

// ---- FIELD OFFSETS ----

// OffsetHealth holds the device health state (Word).
const OffsetHealth = 0

// OffsetLastErrorCode holds the last raw result code (DWord).
const OffsetLastErrorCode = 2

// OffsetSecondsInError holds the duration (in seconds) the device has been in error (Word).
const OffsetSecondsInError = 6

// ---- RESERVED RANGE ----

// Bytes 8-15 are reserved for future use.
const OffsetReservedStart = 8
const OffsetReservedEnd = 15

// ---- DEVICE NAME ----

// OffsetDeviceName is the first byte of the device name String.
// Device name is always placed at the END of the status block.
const OffsetDeviceName = 16

// DeviceNameMaxChars is the maximum number of ASCII characters stored for device name.
const DeviceNameMaxChars = 16

// ---- BLOCK GEOMETRY ----

// BlockSize is the total size of the block in bytes.
const BlockSize = OffsetDeviceName + DeviceNameMaxChars + 2

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a healthy device.
const HealthOK uint16 = 1

// HealthError represents a device error state.
const HealthError uint16 = 2

// HealthStale represents a reachable device whose data did not fully decode.
const HealthStale uint16 = 3
