package vec

import (
	"fmt"
	"io"

	"github.com/joshuapare/bufkit/internal/bounds"
)

// Iter is a non-owning cursor over a vec's live range. It records the
// vec's generation at creation time; any structural mutation of the vec
// bumps the generation and turns the cursor stale. A stale cursor fails
// every operation with ErrStaleIter instead of reading relocated or
// shifted storage.
type Iter[T any] struct {
	vec *Vec[T]
	off int
	gen uint64
}

// Iter returns a cursor positioned before the first live element.
func (v *Vec[T]) Iter() *Iter[T] {
	return &Iter[T]{vec: v, gen: v.gen}
}

// check validates that the cursor's vec has not structurally mutated.
func (it *Iter[T]) check() error {
	if it.gen != it.vec.gen {
		return fmt.Errorf("%w (created at generation %d, vec at %d)",
			ErrStaleIter, it.gen, it.vec.gen)
	}
	return nil
}

// Next returns the element under the cursor and advances. Returns io.EOF
// past the last live element.
func (it *Iter[T]) Next() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.off >= it.vec.size {
		return zero, io.EOF
	}
	val := it.vec.blk.Slots()[it.off]
	it.off++
	return val, nil
}

// Prev steps the cursor back one element and returns it. Returns io.EOF
// when the cursor is already before the first element.
func (it *Iter[T]) Prev() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	if it.off == 0 {
		return zero, io.EOF
	}
	it.off--
	return it.vec.blk.Slots()[it.off], nil
}

// Seek positions the cursor so the next call to Next returns element i.
// Seeking to Len positions past the end. Returns ErrOutOfRange for
// positions outside [0, Len].
func (it *Iter[T]) Seek(i int) error {
	if err := it.check(); err != nil {
		return err
	}
	if err := bounds.CheckInsertPos(i, it.vec.size); err != nil {
		return fmt.Errorf("%w: seek: %v", ErrOutOfRange, err)
	}
	it.off = i
	return nil
}
