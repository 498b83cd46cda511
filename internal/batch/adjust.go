// internal/batch/adjust.go
package batch

import "github.com/tamzrod/s7probe/internal/s7"

// AdjustWordLength normalizes addressing to what the transaction expects.
//
//   - counter and timer areas force their own word length
//   - a bit item transfers exactly one element; start is already a bit address
//   - every other item is rescaled to a byte count with word length Byte,
//     and its byte start becomes the bit address the transaction uses
//
// It reports false when wordLen has no element size.
func AdjustWordLength(area s7.Area, wordLen *s7.WordLen, amount, start *int) bool {
	size := s7.DataSizeByte(*wordLen)
	if size == 0 {
		return false
	}

	if area == s7.AreaCT {
		*wordLen = s7.WLCounter
	}
	if area == s7.AreaTM {
		*wordLen = s7.WLTimer
	}

	switch *wordLen {
	case s7.WLBit:
		*amount = 1
	case s7.WLCounter, s7.WLTimer:
	default:
		*amount *= size
		*start *= 8
		*wordLen = s7.WLByte
	}
	return true
}
