// Package bytebuf implements a growable byte buffer whose storage lives in
// anonymous mmap regions on unix platforms, keeping large transient buffers
// off the Go heap. On other platforms it falls back to heap slices with the
// same semantics.
//
// A Buffer grows like a vec: when full, a larger region is mapped, live
// bytes are copied across and the old region is unmapped, so a failed
// growth leaves the buffer untouched. Capacities are rounded up to the
// page size, since the kernel hands out whole pages either way.
//
// Unlike vec.Vec, a Buffer holds a resource the garbage collector will not
// reclaim: callers must Close it. Close is idempotent and every operation
// on a closed buffer fails with ErrClosed.
//
// Buffer is not synchronized; one goroutine at a time.
package bytebuf
