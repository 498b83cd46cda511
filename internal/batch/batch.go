// internal/batch/batch.go
package batch

import (
	"context"
	"sync"

	"github.com/tamzrod/s7probe/internal/s7"
)

// Batch collects up to s7.MaxVars addressed transfers and runs them as one
// transaction.
//
// Lifecycle: Add items, then exactly one Read or Write. The batch is always
// cleared afterwards, whatever the outcome; every item must be re-added
// before the batch is used again.
type Batch struct {
	mu    sync.Mutex
	tr    Transport
	items []Item
}

// New creates an empty batch bound to a transport.
func New(tr Transport) *Batch {
	return &Batch{
		tr:    tr,
		items: make([]Item, 0, s7.MaxVars),
	}
}

// Add queues one transfer backed by buf[offset:].
// It is rejected when the batch is full, when the word length has no
// element size, or when buf[offset:] is too short for the normalized span.
func (b *Batch) Add(area s7.Area, wordLen s7.WordLen, dbNumber, start, amount int, buf []byte, offset int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) >= s7.MaxVars {
		return false
	}
	if amount <= 0 || start < 0 || offset < 0 {
		return false
	}
	if !AdjustWordLength(area, &wordLen, &amount, &start) {
		return false
	}

	it := Item{
		Area:     area,
		WordLen:  wordLen,
		DBNumber: dbNumber,
		Start:    start,
		Amount:   amount,
		Result:   s7.ErrCliItemNotAvailable,
		buf:      buf,
		offset:   offset,
	}
	if offset > len(buf)-it.Size() {
		return false
	}

	b.items = append(b.items, it)
	return true
}

// AddTag is Add with the addressing fields taken from tag.
func (b *Batch) AddTag(tag s7.Tag, buf []byte, offset int) bool {
	return b.Add(tag.Area, tag.WordLen, tag.DBNumber, tag.Start, tag.Elements, buf, offset)
}

// Len returns the number of queued items.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Read fills the queued buffers from the controller.
// On success it returns one result code per item, in Add order.
// An empty batch returns s7.ErrCliFunctionRefused without using the transport.
func (b *Batch) Read(ctx context.Context) ([]s7.Code, error) {
	return b.run(ctx, func(ctx context.Context, items []Item) error {
		return b.tr.ReadMultiVars(ctx, items)
	})
}

// Write sends the queued buffers to the controller. Same contract as Read.
func (b *Batch) Write(ctx context.Context) ([]s7.Code, error) {
	return b.run(ctx, func(ctx context.Context, items []Item) error {
		return b.tr.WriteMultiVars(ctx, items)
	})
}

// Clear drops every queued item and the buffer references they hold.
func (b *Batch) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearLocked()
}

func (b *Batch) run(ctx context.Context, fn func(context.Context, []Item) error) ([]s7.Code, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// buffer views MUST NOT outlive the call
	defer b.clearLocked()

	if len(b.items) == 0 || len(b.items) > s7.MaxVars {
		return nil, s7.ErrCliFunctionRefused
	}
	if b.tr == nil {
		return nil, s7.ErrTCPNotConnected
	}

	if err := fn(ctx, b.items); err != nil {
		return nil, err
	}

	results := make([]s7.Code, len(b.items))
	for i := range b.items {
		results[i] = b.items[i].Result
	}
	return results, nil
}

func (b *Batch) clearLocked() {
	for i := range b.items {
		b.items[i] = Item{}
	}
	b.items = b.items[:0]
}
