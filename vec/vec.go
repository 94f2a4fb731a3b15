package vec

import (
	"fmt"

	"github.com/joshuapare/bufkit/growth"
	"github.com/joshuapare/bufkit/internal/bounds"
	"github.com/joshuapare/bufkit/storage"
)

// Options configures a Vec at construction time.
type Options struct {
	// Policy selects the capacity growth strategy.
	// The zero value means growth.PolicyDefault.
	Policy growth.Policy

	// Budget caps total allocation charged by this vec (and any other vec
	// sharing the same budget). Nil means unlimited.
	Budget *storage.Budget
}

// Vec is a generic owned growable buffer. The zero value is an empty vec
// with the default growth policy and no allocation.
type Vec[T any] struct {
	blk    storage.Block[T]
	size   int
	gen    uint64
	policy growth.Policy
	budget *storage.Budget
}

// New returns an empty vec. No storage is allocated until the first
// element arrives.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// NewWith returns an empty vec configured by opts.
func NewWith[T any](opts Options) (*Vec[T], error) {
	if opts.Policy != (growth.Policy{}) {
		if err := opts.Policy.Validate(); err != nil {
			return nil, err
		}
	}
	return &Vec[T]{policy: opts.Policy, budget: opts.Budget}, nil
}

// WithCapacity returns an empty vec whose storage already holds n slots.
func WithCapacity[T any](n int, opts Options) (*Vec[T], error) {
	v, err := NewWith[T](opts)
	if err != nil {
		return nil, err
	}
	blk, err := storage.Alloc[T](v.budget, n)
	if err != nil {
		return nil, fmt.Errorf("vec: with capacity %d: %w", n, err)
	}
	v.blk = blk
	return v, nil
}

// Repeat returns a vec holding n copies of val, with capacity exactly n.
func Repeat[T any](val T, n int, opts Options) (*Vec[T], error) {
	v, err := WithCapacity[T](n, opts)
	if err != nil {
		return nil, err
	}
	slots := v.blk.Slots()
	for i := range slots {
		slots[i] = val
	}
	v.size = n
	return v, nil
}

// FromSlice returns a vec holding a deep copy of src, with capacity
// exactly len(src). Later mutations of src and the vec are independent.
func FromSlice[T any](src []T, opts Options) (*Vec[T], error) {
	v, err := WithCapacity[T](len(src), opts)
	if err != nil {
		return nil, err
	}
	copy(v.blk.Slots(), src)
	v.size = len(src)
	return v, nil
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int { return v.blk.Cap() }

// IsEmpty reports whether the vec holds no live elements.
func (v *Vec[T]) IsEmpty() bool { return v.size == 0 }

// Stats returns the allocation accounting of the vec's budget. A vec
// without a budget reports the zero Stats.
func (v *Vec[T]) Stats() storage.Stats { return v.budget.Stats() }

// effectivePolicy substitutes the default policy for the zero value, so
// the zero Vec is usable without configuration.
func (v *Vec[T]) effectivePolicy() growth.Policy {
	if v.policy == (growth.Policy{}) {
		return growth.PolicyDefault
	}
	return v.policy
}

// At returns the element at index i, or ErrOutOfRange.
func (v *Vec[T]) At(i int) (T, error) {
	var zero T
	if err := bounds.CheckIndex(i, v.size); err != nil {
		return zero, fmt.Errorf("%w: at: %v", ErrOutOfRange, err)
	}
	return v.blk.Slots()[i], nil
}

// SetAt replaces the element at index i, or returns ErrOutOfRange.
// Overwriting in place is not a structural mutation: outstanding
// iterators stay valid.
func (v *Vec[T]) SetAt(i int, val T) error {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		return fmt.Errorf("%w: set: %v", ErrOutOfRange, err)
	}
	v.blk.Slots()[i] = val
	return nil
}

// Get returns the element at index i without a size check. The caller
// must guarantee i < Len(); violating that reads spare storage (or panics
// past the capacity) and is not reported as an error.
func (v *Vec[T]) Get(i int) T { return v.blk.Slots()[i] }

// Put stores val at index i without a size check. Same caller obligation
// as Get.
func (v *Vec[T]) Put(i int, val T) { v.blk.Slots()[i] = val }

// Front returns the first element, or ErrOutOfRange when empty.
func (v *Vec[T]) Front() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, fmt.Errorf("%w: front of empty vec", ErrOutOfRange)
	}
	return v.blk.Slots()[0], nil
}

// Back returns the last element, or ErrOutOfRange when empty.
func (v *Vec[T]) Back() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, fmt.Errorf("%w: back of empty vec", ErrOutOfRange)
	}
	return v.blk.Slots()[v.size-1], nil
}

// Slice returns a borrowed view of the live range. The view aliases the
// vec's storage and expires at the next structural mutation; using it
// after that is a caller obligation violation, same as Get past Len.
// The view's capacity is clipped so appends through it cannot touch the
// vec's spare slots.
func (v *Vec[T]) Slice() []T {
	return v.blk.Slots()[:v.size:v.size]
}

// Range returns a borrowed view of the live elements [off, off+n).
// Checked: a range that leaves the live prefix (or whose end overflows)
// fails with ErrOutOfRange. The view expires at the next structural
// mutation, same as Slice.
func (v *Vec[T]) Range(off, n int) ([]T, error) {
	if err := bounds.CheckRange(off, n, v.size); err != nil {
		return nil, fmt.Errorf("%w: range: %v", ErrOutOfRange, err)
	}
	return v.blk.Slots()[off : off+n : off+n], nil
}

// CopySlice returns a fresh copy of the live range, independent of the
// vec's storage.
func (v *Vec[T]) CopySlice() []T {
	out := make([]T, v.size)
	copy(out, v.blk.Slots()[:v.size])
	return out
}
