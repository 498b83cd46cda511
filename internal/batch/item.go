// internal/batch/item.go
package batch

import (
	"context"

	"github.com/tamzrod/s7probe/internal/s7"
)

// Item is one addressed transfer inside a batch.
// Addressing fields are already normalized by AdjustWordLength.
type Item struct {
	Area     s7.Area
	WordLen  s7.WordLen
	DBNumber int
	Start    int // wire address: bit address for Bit/Byte, index for Counter/Timer
	Amount   int // elements of WordLen
	Result   s7.Code

	// caller buffer view, valid only inside Read/Write
	buf    []byte
	offset int
}

// Size is the number of bytes the item transfers.
func (it *Item) Size() int {
	return it.Amount * s7.DataSizeByte(it.WordLen)
}

// Data returns the caller's buffer region backing this item.
// Transports read from it on Write and fill it on Read.
func (it *Item) Data() []byte {
	return it.buf[it.offset : it.offset+it.Size()]
}

// ByteOffset is the first controller byte the item touches.
// Counter and timer items return their element index unchanged.
func (it *Item) ByteOffset() int {
	switch it.WordLen {
	case s7.WLBit, s7.WLByte:
		return it.Start >> 3
	default:
		return it.Start
	}
}

// Bit is the bit index of a WLBit item.
func (it *Item) Bit() int {
	return it.Start & 7
}

// Transport carries a multi-variable transaction to the controller.
// Implementations set Result on every item and return a non-nil error only
// when the transaction as a whole failed.
type Transport interface {
	ReadMultiVars(ctx context.Context, items []Item) error
	WriteMultiVars(ctx context.Context, items []Item) error
}
