// internal/transport/modbus/transport.go
package modbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/s7probe/internal/batch"
	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/s7"
)

// Protocol limits per request.
const (
	maxReadRegs  = 125
	maxWriteRegs = 123
)

var _ batch.Transport = (*Client)(nil)

// ---- batch.Transport ----

// ReadMultiVars reads every item in order. Gateway exceptions become the
// item's Result; a broken link fails the whole transaction.
func (c *Client) ReadMultiVars(ctx context.Context, items []batch.Item) error {
	return c.each(ctx, items, c.readItem)
}

// WriteMultiVars writes every item in order. Same contract as ReadMultiVars.
func (c *Client) WriteMultiVars(ctx context.Context, items []batch.Item) error {
	return c.each(ctx, items, c.writeItem)
}

func (c *Client) each(ctx context.Context, items []batch.Item, fn func(*batch.Item) error) error {
	if len(items) > s7.MaxVars {
		return s7.ErrCliTooManyItems
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.regs == nil {
		return s7.ErrTCPNotConnected
	}
	if c.handler != nil {
		c.handler.SlaveId = c.unitID
	}

	for i := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		code, err := classify(fn(&items[i]))
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items[i].Result = code
	}
	return nil
}

// ---- items ----

func (c *Client) readItem(it *batch.Item) error {
	w, err := c.locate(it)
	if err != nil {
		return err
	}

	raw, err := c.fetch(it.Area, w)
	if err != nil {
		return err
	}

	data := it.Data()
	if it.WordLen == s7.WLBit {
		on, _ := codec.GetBit(raw, w.skip, it.Bit())
		data[0] = 0
		if on {
			data[0] = 1
		}
		return nil
	}
	copy(data, raw[w.skip:])
	return nil
}

func (c *Client) writeItem(it *batch.Item) error {
	if it.Area == s7.AreaPE {
		return s7.ErrCliAddressOutOfRange
	}

	w, err := c.locate(it)
	if err != nil {
		return err
	}

	data := it.Data()
	if it.WordLen == s7.WLByte && w.aligned(len(data)) {
		return c.store(w.first, data)
	}

	// partial registers: read-modify-write
	raw, err := c.fetch(it.Area, w)
	if err != nil {
		return err
	}
	if it.WordLen == s7.WLBit {
		_ = codec.SetBit(raw, w.skip, it.Bit(), data[0]&1 != 0)
	} else {
		copy(raw[w.skip:], data)
	}
	return c.store(w.first, raw)
}

// locate maps an item onto its register window.
func (c *Client) locate(it *batch.Item) (window, error) {
	switch it.WordLen {
	case s7.WLBit, s7.WLByte:
	default:
		// counters and timers have no register image
		return window{}, s7.ErrCliItemNotAvailable
	}

	base, ok := c.mm.base(it.Area, it.DBNumber)
	if !ok {
		return window{}, s7.ErrCliItemNotAvailable
	}
	w, ok := span(base, it.ByteOffset(), it.Size())
	if !ok {
		return window{}, s7.ErrCliAddressOutOfRange
	}
	return w, nil
}

// ---- register I/O ----

func (c *Client) fetch(area s7.Area, w window) ([]byte, error) {
	read := c.regs.ReadHoldingRegisters
	if area == s7.AreaPE {
		read = c.regs.ReadInputRegisters
	}

	out := make([]byte, 0, 2*w.qty)
	for done := 0; done < w.qty; {
		q := min(maxReadRegs, w.qty-done)
		b, err := read(w.first+uint16(done), uint16(q))
		if err != nil {
			return nil, err
		}
		if len(b) != 2*q {
			return nil, s7.ErrCliInvalidDataSizeRecvd
		}
		out = append(out, b...)
		done += q
	}
	return out, nil
}

func (c *Client) store(first uint16, data []byte) error {
	qty := len(data) / 2
	for done := 0; done < qty; {
		q := min(maxWriteRegs, qty-done)
		chunk := data[2*done : 2*(done+q)]
		if _, err := c.regs.WriteMultipleRegisters(first+uint16(done), uint16(q), chunk); err != nil {
			return err
		}
		done += q
	}
	return nil
}

// ---- error mapping ----

// classify splits an item error into a per-item result code or a
// transaction-level failure.
func classify(err error) (s7.Code, error) {
	if err == nil {
		return 0, nil
	}

	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return exceptionCode(me.ExceptionCode), nil
	}

	var code s7.Code
	if errors.As(err, &code) {
		return code, nil
	}

	return 0, fmt.Errorf("%w: %w", s7.ErrTCPDataReceive, err)
}

func exceptionCode(ex byte) s7.Code {
	switch ex {
	case modbus.ExceptionCodeIllegalFunction:
		return s7.ErrCliFunNotAvailable
	case modbus.ExceptionCodeIllegalDataAddress:
		return s7.ErrCliAddressOutOfRange
	case modbus.ExceptionCodeIllegalDataValue:
		return s7.ErrCliInvalidValue
	case modbus.ExceptionCodeServerDeviceBusy:
		return s7.ErrCliJobPending
	case modbus.ExceptionCodeGatewayTargetDeviceFailedToRespond:
		return s7.ErrCliJobTimeout
	default:
		return s7.ErrCliInvalidPlcAnswer
	}
}
