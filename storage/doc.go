// Package storage provides raw block allocation for growable buffers.
//
// # Overview
//
// A Block[T] is one contiguous allocation of element slots with no notion
// of how many slots are live - tracking the live prefix is the container's
// job. The package exposes three primitives:
//
//   - Alloc(budget, n): fresh block of n slots
//   - Free(budget, block): release a block exactly once
//   - Relocate(budget, block, live, newCap): move the live prefix into a
//     new allocation and release the old one
//
// # Budgets
//
// Allocation can be capped by a Budget, which accounts for bytes in use
// and fails Alloc with ErrBudget once the cap would be exceeded. A nil
// Budget means unlimited. Budgets make allocation failure a real,
// testable condition instead of a theoretical one, and double as a stats
// source (bytes in use, total allocs/frees, relocations).
//
// Accounting uses the shallow element size: a Block[[]byte] is charged
// for the slice headers, not the bytes they point at.
//
// # Failure semantics
//
// Relocate allocates the new block before touching the old one. Element
// transfer is a plain copy and cannot fail, so a failed relocation leaves
// the original block fully intact - the strong guarantee.
//
// # Thread safety
//
// Blocks and Budgets are not synchronized. A buffer and its budget belong
// to one goroutine at a time; callers needing sharing must synchronize
// externally.
package storage
