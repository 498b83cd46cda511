// internal/status/encode.go
package status

import "github.com/tamzrod/s7probe/internal/codec"

// Field is one contiguous region of the status block.
type Field struct {
	Offset int
	Size   int
}

// Fields lists the runtime fields in block order.
// The device name is written once and is not part of it.
var Fields = []Field{
	{Offset: OffsetHealth, Size: 2},
	{Offset: OffsetLastErrorCode, Size: 4},
	{Offset: OffsetSecondsInError, Size: 2},
}

// DeviceNameField is the region holding the device name String.
var DeviceNameField = Field{Offset: OffsetDeviceName, Size: DeviceNameMaxChars + 2}

// Encode converts a Snapshot into a full device status block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot, deviceName string) []byte {
	block := make([]byte, BlockSize)

	// block is sized for every field; the setters cannot fail
	_ = codec.SetWord(block, OffsetHealth, s.Health)
	_ = codec.SetDWord(block, OffsetLastErrorCode, s.LastErrorCode)
	_ = codec.SetWord(block, OffsetSecondsInError, s.SecondsInError)
	_ = codec.SetString(block, OffsetDeviceName, DeviceNameMaxChars, deviceName)

	return block
}

// Decode is the inverse of Encode.
func Decode(block []byte) (Snapshot, string, error) {
	var s Snapshot
	var err error

	if s.Health, err = codec.GetWord(block, OffsetHealth); err != nil {
		return Snapshot{}, "", err
	}
	if s.LastErrorCode, err = codec.GetDWord(block, OffsetLastErrorCode); err != nil {
		return Snapshot{}, "", err
	}
	if s.SecondsInError, err = codec.GetWord(block, OffsetSecondsInError); err != nil {
		return Snapshot{}, "", err
	}
	name, err := codec.GetString(block, OffsetDeviceName)
	if err != nil {
		return Snapshot{}, "", err
	}
	return s, name, nil
}
