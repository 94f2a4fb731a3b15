package bytebuf

import (
	"fmt"
	"os"

	"github.com/joshuapare/bufkit/growth"
	"github.com/joshuapare/bufkit/internal/bounds"
)

// Options configures a Buffer at construction time.
type Options struct {
	// Policy selects the capacity growth strategy.
	// The zero value means growth.PolicyDefault.
	Policy growth.Policy

	// InitialCapacity pre-maps at least this many bytes. 0 maps nothing
	// until the first write.
	InitialCapacity int
}

// Buffer is a growable byte buffer over a single mapped region.
type Buffer struct {
	data   []byte // whole mapped region, len == capacity
	size   int
	policy growth.Policy
	closed bool
}

// New returns a Buffer configured by opts.
func New(opts Options) (*Buffer, error) {
	if opts.Policy != (growth.Policy{}) {
		if err := opts.Policy.Validate(); err != nil {
			return nil, err
		}
	}
	b := &Buffer{policy: opts.Policy}
	if opts.InitialCapacity > 0 {
		n, err := pageAlign(opts.InitialCapacity)
		if err != nil {
			return nil, err
		}
		data, err := mapRegion(n)
		if err != nil {
			return nil, fmt.Errorf("bytebuf: map %d bytes: %w", n, err)
		}
		b.data = data
	}
	return b, nil
}

// pageAlign rounds n up to a whole number of pages.
func pageAlign(n int) (int, error) {
	page := os.Getpagesize()
	aligned, ok := bounds.AddOK(n, page-1)
	if !ok {
		return 0, fmt.Errorf("bytebuf: %w: %d", growth.ErrCapacityOverflow, n)
	}
	return aligned - aligned%page, nil
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return b.size }

// Cap returns the mapped capacity in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Bytes returns a borrowed view of the written range. The view aliases
// the mapped region and expires at the next Write, Grow or Close.
func (b *Buffer) Bytes() []byte { return b.data[:b.size] }

// Grow ensures room for at least n more bytes, relocating to a larger
// region when needed. On failure the buffer is unchanged.
func (b *Buffer) Grow(n int) error {
	if b.closed {
		return ErrClosed
	}
	if n < 0 {
		return fmt.Errorf("bytebuf: %w: grow %d", growth.ErrCapacityOverflow, n)
	}
	required, err := growth.RequiredFor(b.size, n)
	if err != nil {
		return fmt.Errorf("bytebuf: %w", err)
	}
	if required <= len(b.data) {
		return nil
	}
	next, err := b.effectivePolicy().Next(len(b.data), required)
	if err != nil {
		return fmt.Errorf("bytebuf: %w", err)
	}
	next, err = pageAlign(next)
	if err != nil {
		return err
	}

	// Map the new region before giving up the old one, so a failure here
	// leaves the buffer intact.
	data, err := mapRegion(next)
	if err != nil {
		return fmt.Errorf("bytebuf: map %d bytes: %w", next, err)
	}
	copy(data, b.data[:b.size])
	if old := b.data; old != nil {
		if err := unmapRegion(old); err != nil {
			// The new region already carries the live bytes; losing the
			// old mapping is a leak we can only report.
			b.data = data
			return fmt.Errorf("bytebuf: unmap old region: %w", err)
		}
	}
	b.data = data
	return nil
}

// Write appends p, growing as needed. Implements io.Writer. A failed
// write appends nothing.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Grow(len(p)); err != nil {
		return 0, err
	}
	copy(b.data[b.size:], p)
	b.size += len(p)
	return len(p), nil
}

// WriteByte appends a single byte. Implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	if err := b.Grow(1); err != nil {
		return err
	}
	b.data[b.size] = c
	b.size++
	return nil
}

// Truncate discards all but the first n written bytes, keeping capacity.
// The discarded tail is zeroed so stale data cannot resurface through a
// later Bytes call.
func (b *Buffer) Truncate(n int) error {
	if b.closed {
		return ErrClosed
	}
	if n < 0 || n > b.size {
		if n > b.size {
			return fmt.Errorf("%w: %d > len %d", ErrTruncateGrow, n, b.size)
		}
		return fmt.Errorf("bytebuf: truncate negative length %d", n)
	}
	clear(b.data[n:b.size])
	b.size = n
	return nil
}

// Reset discards all written bytes, keeping capacity.
func (b *Buffer) Reset() {
	if b.closed {
		return
	}
	clear(b.data[:b.size])
	b.size = 0
}

// Close unmaps the region. Idempotent; all later operations fail with
// ErrClosed.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	old := b.data
	b.data = nil
	b.size = 0
	if old == nil {
		return nil
	}
	if err := unmapRegion(old); err != nil {
		return fmt.Errorf("bytebuf: close: %w", err)
	}
	return nil
}

func (b *Buffer) effectivePolicy() growth.Policy {
	if b.policy == (growth.Policy{}) {
		return growth.PolicyDefault
	}
	return b.policy
}
