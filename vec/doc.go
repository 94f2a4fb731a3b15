// Package vec implements a generic owned growable buffer.
//
// # Overview
//
// Vec[T] is a value that exclusively owns one contiguous block of element
// slots. It tracks a logical size separately from the block's capacity and
// maintains two invariants at every observable point:
//
//   - size <= capacity
//   - slots [0, size) are live; slots [size, capacity) are spare storage
//
// Appends are amortized O(1): when the block is full, the vec relocates to
// a larger block chosen by a growth.Policy (doubling by default), so N
// appends from empty cost O(N) total element moves across O(log N)
// relocations.
//
// # Ownership, copy and move
//
// A Vec owns its storage exclusively. Duplication is always explicit:
//
//   - Clone / Assign deep-copy the live elements into fresh storage sized
//     to the source's size (spare capacity is not preserved).
//   - Move / MoveFrom transfer the block in O(1) without touching
//     elements, leaving the source in the valid empty state (size 0,
//     capacity 0, no storage). Transfer and source reset happen in the
//     same step, so no intermediate state has two owners of one block.
//
// Assign detects self-assignment and returns without work. Move of a vec
// into itself is likewise a no-op.
//
// # Failure semantics
//
// Every checked error (out-of-range access, allocation budget exhaustion,
// capacity overflow) leaves the vec exactly as it was before the call.
// Element transfer during relocation is a plain copy and cannot fail, so
// growth never tears the buffer. ShrinkToFit reports allocation failure
// but still leaves the buffer unchanged.
//
// # Checked and unchecked access
//
// At/SetAt/Front/Back validate indexes and return ErrOutOfRange. Get and
// Put skip the size check for performance-sensitive callers; calling them
// with i >= Len() is a caller obligation, not a runtime-signaled error
// (reads of spare slots yield stale or zero values, and anything past the
// capacity panics like any Go slice access).
//
// # Views
//
// Iter returns a non-owning cursor over the live range. Each structural
// mutation bumps the vec's generation counter; a cursor created before
// the mutation fails with ErrStaleIter instead of silently reading
// relocated or shifted storage. Slice returns a borrowed []T of the live
// range with the same invalidation rule, but unchecked - treat it as
// expired after any mutating call.
//
// # Thread safety
//
// Vec is not synchronized. At most one goroutine may mutate a given Vec
// at a time; concurrent mutation without external locking is undefined.
package vec
