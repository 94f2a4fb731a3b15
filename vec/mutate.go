package vec

import (
	"fmt"

	"github.com/joshuapare/bufkit/growth"
	"github.com/joshuapare/bufkit/internal/bounds"
	"github.com/joshuapare/bufkit/storage"
)

// grow relocates to a policy-chosen capacity covering required. The old
// block is untouched when allocation fails.
func (v *Vec[T]) grow(required int) error {
	next, err := v.effectivePolicy().Next(v.blk.Cap(), required)
	if err != nil {
		return fmt.Errorf("vec: grow: %w", err)
	}
	if next == v.blk.Cap() {
		return nil
	}
	if err := storage.Relocate(v.budget, &v.blk, v.size, next); err != nil {
		return fmt.Errorf("vec: grow to %d: %w", next, err)
	}
	v.gen++
	return nil
}

// Append adds val after the last live element, growing storage as needed.
// Amortized O(1). On failure the vec is unchanged.
func (v *Vec[T]) Append(val T) error {
	if v.size == v.blk.Cap() {
		required, err := growth.RequiredFor(v.size, 1)
		if err != nil {
			return fmt.Errorf("vec: append: %w", err)
		}
		if err := v.grow(required); err != nil {
			return err
		}
	}
	v.blk.Slots()[v.size] = val
	v.size++
	v.gen++
	return nil
}

// AppendSlice adds all of vals in order. A single growth step reserves
// room for the whole batch, so either every element lands or none does.
func (v *Vec[T]) AppendSlice(vals ...T) error {
	if len(vals) == 0 {
		return nil
	}
	required, err := growth.RequiredFor(v.size, len(vals))
	if err != nil {
		return fmt.Errorf("vec: append slice: %w", err)
	}
	if required > v.blk.Cap() {
		if err := v.grow(required); err != nil {
			return err
		}
	}
	copy(v.blk.Slots()[v.size:], vals)
	v.size += len(vals)
	v.gen++
	return nil
}

// Insert places val at position i, shifting elements at and after i one
// slot right. Position == Len appends. O(Len - i). On failure the vec is
// unchanged.
func (v *Vec[T]) Insert(i int, val T) error {
	if err := bounds.CheckInsertPos(i, v.size); err != nil {
		return fmt.Errorf("%w: insert: %v", ErrOutOfRange, err)
	}
	if v.size == v.blk.Cap() {
		required, err := growth.RequiredFor(v.size, 1)
		if err != nil {
			return fmt.Errorf("vec: insert: %w", err)
		}
		if err := v.grow(required); err != nil {
			return err
		}
	}
	slots := v.blk.Slots()
	// copy has memmove semantics, so the overlapping right-shift is safe.
	copy(slots[i+1:v.size+1], slots[i:v.size])
	slots[i] = val
	v.size++
	v.gen++
	return nil
}

// Erase removes the element at index i, shifting later elements one slot
// left. O(Len - i).
func (v *Vec[T]) Erase(i int) error {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		return fmt.Errorf("%w: erase: %v", ErrOutOfRange, err)
	}
	slots := v.blk.Slots()
	copy(slots[i:v.size-1], slots[i+1:v.size])
	var zero T
	slots[v.size-1] = zero // drop the duplicated tail reference
	v.size--
	v.gen++
	return nil
}

// Clear removes every live element. Capacity is kept, so a cleared vec
// refills without reallocating. Calling Clear on an empty vec is a no-op.
func (v *Vec[T]) Clear() {
	if v.size == 0 {
		return
	}
	clear(v.blk.Slots()[:v.size])
	v.size = 0
	v.gen++
}

// Reserve relocates to capacity exactly n when n exceeds the current
// capacity, bypassing the growth policy. Smaller or negative n is a
// no-op. Never changes Len.
func (v *Vec[T]) Reserve(n int) error {
	if n <= v.blk.Cap() {
		return nil
	}
	if err := storage.Relocate(v.budget, &v.blk, v.size, n); err != nil {
		return fmt.Errorf("vec: reserve %d: %w", n, err)
	}
	v.gen++
	return nil
}

// ShrinkToFit relocates to capacity == Len, releasing spare slots. A vec
// with Len 0 releases its storage entirely. Best-effort: when the
// relocation itself cannot be satisfied the vec is left unchanged and the
// failure is reported.
func (v *Vec[T]) ShrinkToFit() error {
	if v.size == v.blk.Cap() {
		return nil
	}
	if err := storage.Relocate(v.budget, &v.blk, v.size, v.size); err != nil {
		return fmt.Errorf("vec: shrink to fit: %w", err)
	}
	v.gen++
	return nil
}

// Swap exchanges storage, size and configuration with other in O(1) with
// no element-level work. Never fails. Swapping a vec with itself is a
// no-op.
func (v *Vec[T]) Swap(other *Vec[T]) {
	if v == other {
		return
	}
	v.blk, other.blk = other.blk, v.blk
	v.size, other.size = other.size, v.size
	v.policy, other.policy = other.policy, v.policy
	v.budget, other.budget = other.budget, v.budget
	v.gen++
	other.gen++
}

// Release frees the vec's storage back to its budget and leaves the empty
// state (size 0, capacity 0). The vec remains usable afterwards; the next
// append allocates fresh storage. Release is idempotent.
func (v *Vec[T]) Release() {
	if v.blk.Cap() == 0 && v.size == 0 {
		return
	}
	storage.Free(v.budget, &v.blk)
	v.size = 0
	v.gen++
}
