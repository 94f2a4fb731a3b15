package vec

import (
	"fmt"

	"github.com/joshuapare/bufkit/storage"
)

// Clone returns a deep copy of v. The clone's capacity equals v's size -
// spare capacity is not preserved. Mutating the clone never affects v.
func (v *Vec[T]) Clone() (*Vec[T], error) {
	blk, err := storage.Alloc[T](v.budget, v.size)
	if err != nil {
		return nil, fmt.Errorf("vec: clone: %w", err)
	}
	copy(blk.Slots(), v.blk.Slots()[:v.size])
	return &Vec[T]{
		blk:    blk,
		size:   v.size,
		policy: v.policy,
		budget: v.budget,
	}, nil
}

// Assign replaces v's contents with a deep copy of src. Assigning a vec
// to itself is an explicit no-op. The new storage is allocated before the
// old one is released, so a failed Assign leaves v unchanged.
func (v *Vec[T]) Assign(src *Vec[T]) error {
	if v == src {
		return nil
	}
	blk, err := storage.Alloc[T](v.budget, src.size)
	if err != nil {
		return fmt.Errorf("vec: assign: %w", err)
	}
	copy(blk.Slots(), src.blk.Slots()[:src.size])
	storage.Free(v.budget, &v.blk)
	v.blk = blk
	v.size = src.size
	v.gen++
	return nil
}

// Move constructs a new vec that takes over src's storage, size and
// configuration in O(1) without touching elements. src is left in the
// valid empty state (size 0, capacity 0, no storage) and remains usable.
// Never fails.
func Move[T any](src *Vec[T]) *Vec[T] {
	dst := &Vec[T]{
		blk:    src.blk,
		size:   src.size,
		policy: src.policy,
		budget: src.budget,
	}
	// Null the source in the same step that transfers the block: at no
	// point do two vecs own the same allocation.
	src.blk = storage.Block[T]{}
	src.size = 0
	src.gen++
	return dst
}

// MoveFrom releases v's own storage and takes over src's, leaving src in
// the valid empty state. Moving a vec into itself is a no-op. O(1), never
// fails.
func (v *Vec[T]) MoveFrom(src *Vec[T]) {
	if v == src {
		return
	}
	storage.Free(v.budget, &v.blk)
	v.blk = src.blk
	v.size = src.size
	// The block stays charged to src's budget, so the budget (and policy)
	// must travel with it.
	v.policy = src.policy
	v.budget = src.budget
	src.blk = storage.Block[T]{}
	src.size = 0
	v.gen++
	src.gen++
}
