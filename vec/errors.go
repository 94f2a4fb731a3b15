package vec

import "errors"

var (
	// ErrOutOfRange indicates a checked access or position beyond the live range.
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrStaleIter indicates an iterator used after a structural mutation
	// of the vec it was created from.
	ErrStaleIter = errors.New("vec: iterator invalidated by mutation")
)
