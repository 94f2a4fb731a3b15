package storage

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Block is a single contiguous allocation of element slots. The zero value
// denotes "no allocation". A Block has no logical-size concept; every slot
// is plain storage and the owning container decides which prefix is live.
type Block[T any] struct {
	slots []T
}

// Cap returns the number of slots in the block.
func (b Block[T]) Cap() int { return cap(b.slots) }

// Slots exposes the full slot range, len == Cap(). The returned slice
// aliases the block; it is invalidated by Relocate and Free.
func (b Block[T]) Slots() []T { return b.slots }

// sizeOf is the shallow byte size of one element slot.
func sizeOf[T any]() int64 {
	var zero T
	return int64(unsafe.Sizeof(zero))
}

// Alloc returns a fresh block of n slots charged to budget. n == 0 yields
// the zero block without touching the budget.
func Alloc[T any](budget *Budget, n int) (Block[T], error) {
	if n < 0 {
		return Block[T]{}, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return Block[T]{}, nil
	}
	nbytes, ok := bounds.MulOK(n, int(sizeOf[T]()))
	if !ok {
		return Block[T]{}, fmt.Errorf("%w: %d slots of %d bytes", ErrBadCount, n, sizeOf[T]())
	}
	if err := budget.reserve(int64(nbytes)); err != nil {
		return Block[T]{}, err
	}
	return Block[T]{slots: make([]T, n)}, nil
}

// Free releases the block back to budget and resets it to the zero state.
// Freeing the zero block is a no-op, so a block can pass through Free any
// number of times without double-release.
func Free[T any](budget *Budget, blk *Block[T]) {
	if blk == nil || blk.slots == nil {
		return
	}
	budget.release(int64(cap(blk.slots)) * sizeOf[T]())
	blk.slots = nil
}

// Relocate moves the first live slots of blk into a fresh allocation of
// newCap slots, releases the old allocation, and swaps the new one into
// blk. The new block is allocated before the old one is touched, so on
// failure blk is left fully intact.
func Relocate[T any](budget *Budget, blk *Block[T], live, newCap int) error {
	if blk == nil {
		return fmt.Errorf("%w: nil block", ErrBadCount)
	}
	if live < 0 || live > blk.Cap() {
		return fmt.Errorf("%w: live=%d cap=%d", ErrBadCount, live, blk.Cap())
	}
	if newCap < live {
		return fmt.Errorf("%w: newCap=%d < live=%d", ErrBadCount, newCap, live)
	}
	if newCap == blk.Cap() {
		return nil
	}
	next, err := Alloc[T](budget, newCap)
	if err != nil {
		return err
	}
	copy(next.slots, blk.slots[:live])
	Free(budget, blk)
	*blk = next
	budget.noteRelocation()
	return nil
}
