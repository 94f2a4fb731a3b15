package bytebuf

import "errors"

var (
	// ErrClosed indicates an operation on a buffer after Close.
	ErrClosed = errors.New("bytebuf: buffer is closed")

	// ErrTruncateGrow indicates a Truncate target beyond the current length.
	ErrTruncateGrow = errors.New("bytebuf: truncate cannot grow")
)
