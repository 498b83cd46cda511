// internal/transport/modbus/memmap.go
package modbus

import "github.com/tamzrod/s7probe/internal/s7"

// MemoryMap places controller areas on the gateway's register space.
// Byte n of an area lives in register base+n/2: even bytes in the high
// half, odd bytes in the low half. This matches the byte order of S7
// memory, so multi-byte values need no swapping.
type MemoryMap struct {
	DB map[int]uint16 // data block number -> holding register base
	MK *uint16        // merkers, holding registers
	PA *uint16        // process outputs, holding registers
	PE *uint16        // process inputs, input registers (read-only)
}

// base returns the register base of an area/DB pair.
func (m MemoryMap) base(area s7.Area, db int) (uint16, bool) {
	var p *uint16
	switch area {
	case s7.AreaDB:
		b, ok := m.DB[db]
		return b, ok
	case s7.AreaMK:
		p = m.MK
	case s7.AreaPA:
		p = m.PA
	case s7.AreaPE:
		p = m.PE
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// window is the register range covering n bytes at byte offset off.
type window struct {
	first uint16 // register address
	qty   int    // registers
	skip  int    // leading pad byte (0 or 1)
}

func span(base uint16, off, n int) (window, bool) {
	firstReg := off / 2
	lastReg := (off + n - 1) / 2
	addr := int(base) + firstReg
	qty := lastReg - firstReg + 1
	if addr+qty-1 > 0xFFFF {
		return window{}, false
	}
	return window{first: uint16(addr), qty: qty, skip: off % 2}, true
}

// aligned reports whether the window maps onto whole registers only.
func (w window) aligned(n int) bool {
	return w.skip == 0 && n%2 == 0
}
