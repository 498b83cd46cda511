// internal/s7/constants.go
package s7

// Area and word-length codes are dispatched on by the transport.
// These values define the protocol and MUST NOT be configurable.

// Area identifies an address-space partition on the controller.
type Area uint8

// ---- AREAS ----

const (
	AreaPE Area = 0x81 // process inputs
	AreaPA Area = 0x82 // process outputs
	AreaMK Area = 0x83 // merkers (flag memory)
	AreaDB Area = 0x84 // data blocks
	AreaCT Area = 0x1C // counters
	AreaTM Area = 0x1D // timers
)

// WordLen is the unit size/kind used when addressing an area.
type WordLen uint8

// ---- WORD LENGTHS ----

const (
	WLBit     WordLen = 0x01
	WLByte    WordLen = 0x02
	WLChar    WordLen = 0x03
	WLWord    WordLen = 0x04
	WLInt     WordLen = 0x05
	WLDWord   WordLen = 0x06
	WLDInt    WordLen = 0x07
	WLReal    WordLen = 0x08
	WLCounter WordLen = 0x1C
	WLTimer   WordLen = 0x1D
)

// ---- LIMITS ----

// MaxVars is the vendor-imposed item limit of one multi-variable transaction.
const MaxVars = 20

// DataSizeByte returns the wire size in bytes of one element of wl.
// Unknown word lengths return 0.
func DataSizeByte(wl WordLen) int {
	switch wl {
	case WLBit: // one byte per bit on the wire
		return 1
	case WLByte, WLChar:
		return 1
	case WLWord, WLInt:
		return 2
	case WLDWord, WLDInt, WLReal:
		return 4
	case WLCounter, WLTimer:
		return 2
	default:
		return 0
	}
}

// Tag bundles the addressing fields of one transfer.
type Tag struct {
	Area     Area
	DBNumber int
	Start    int
	Elements int
	WordLen  WordLen
}

func (a Area) String() string {
	switch a {
	case AreaPE:
		return "PE"
	case AreaPA:
		return "PA"
	case AreaMK:
		return "MK"
	case AreaDB:
		return "DB"
	case AreaCT:
		return "CT"
	case AreaTM:
		return "TM"
	default:
		return "area?"
	}
}
