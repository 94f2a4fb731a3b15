package storage

import "fmt"

// Stats aggregates allocation accounting for a Budget.
type Stats struct {
	// InUseBytes is the shallow size of all live blocks.
	InUseBytes int64

	// LimitBytes is the configured ceiling, 0 when unlimited.
	LimitBytes int64

	// TotalAllocs and TotalFrees count block-level events, not bytes.
	TotalAllocs int64
	TotalFrees  int64

	// Relocations counts successful Relocate calls.
	Relocations int64
}

// Budget caps the total bytes live across all blocks charged to it.
// The zero value and the nil pointer both mean "unlimited, no accounting
// shared with anyone else".
type Budget struct {
	limit int64 // 0 = unlimited
	stats Stats
}

// NewBudget returns a budget capped at limitBytes. limitBytes <= 0 means
// unlimited (accounting only).
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{}
	if limitBytes > 0 {
		b.limit = limitBytes
	}
	b.stats.LimitBytes = b.limit
	return b
}

// Stats returns a snapshot of the budget's accounting.
func (b *Budget) Stats() Stats {
	if b == nil {
		return Stats{}
	}
	return b.stats
}

// InUse returns the live byte count.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.stats.InUseBytes
}

// reserve charges n bytes, failing when the cap would be exceeded.
func (b *Budget) reserve(n int64) error {
	if b == nil {
		return nil
	}
	if b.limit > 0 && b.stats.InUseBytes+n > b.limit {
		return fmt.Errorf("%w: in use %d + request %d > limit %d",
			ErrBudget, b.stats.InUseBytes, n, b.limit)
	}
	b.stats.InUseBytes += n
	b.stats.TotalAllocs++
	return nil
}

// release returns n bytes to the budget.
func (b *Budget) release(n int64) {
	if b == nil {
		return
	}
	b.stats.InUseBytes -= n
	b.stats.TotalFrees++
}

// noteRelocation records a completed Relocate.
func (b *Budget) noteRelocation() {
	if b == nil {
		return
	}
	b.stats.Relocations++
}
