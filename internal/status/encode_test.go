// internal/status/encode_test.go
package status

import "testing"

func TestEncode_Layout(t *testing.T) {
	block := Encode(Snapshot{
		Health:         HealthError,
		LastErrorCode:  0x00900000,
		SecondsInError: 300,
	}, "LINE-1")

	if len(block) != BlockSize {
		t.Fatalf("block size: got %d want %d", len(block), BlockSize)
	}

	want := map[int]byte{
		0: 0x00, 1: 0x02,
		2: 0x00, 3: 0x90, 4: 0x00, 5: 0x00,
		6: 0x01, 7: 0x2C,
		16: DeviceNameMaxChars, 17: 6, 18: 'L',
	}
	for i, b := range want {
		if block[i] != b {
			t.Fatalf("byte %d: got 0x%02X want 0x%02X", i, block[i], b)
		}
	}
	for i := OffsetReservedStart; i <= OffsetReservedEnd; i++ {
		if block[i] != 0 {
			t.Fatalf("reserved byte %d not zero", i)
		}
	}
}

func TestEncode_DeviceNameTruncated(t *testing.T) {
	block := Encode(Snapshot{}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	_, name, err := Decode(block)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if name != "ABCDEFGHIJKLMNOP" {
		t.Fatalf("name: got %q", name)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	in := Snapshot{Health: HealthOK, LastErrorCode: 0x02300000, SecondsInError: 65535}

	got, name, err := Decode(Encode(in, "PLC"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != in || name != "PLC" {
		t.Fatalf("round trip: got %+v %q", got, name)
	}
}

func TestDecode_Short(t *testing.T) {
	if _, _, err := Decode(make([]byte, 4)); err == nil {
		t.Fatalf("expected error for short block")
	}
}
