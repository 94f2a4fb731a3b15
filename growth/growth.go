// Package growth computes capacity steps for growable buffers.
//
// A Policy is a pure function from (current capacity, required capacity) to
// the next capacity. Growing by a constant factor keeps appends amortized
// O(1): the total relocation cost for N appends is bounded by a constant
// multiple of N, and the number of relocations is O(log N).
package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/bufkit/internal/bounds"
)

var (
	// ErrCapacityOverflow indicates a requested capacity that does not fit in int.
	ErrCapacityOverflow = errors.New("growth: capacity overflows int")

	// ErrBadPolicy indicates a Policy whose constants break the amortization
	// argument (factor too small) or that can never allocate (min < 1).
	ErrBadPolicy = errors.New("growth: invalid policy")
)

// Policy defines the capacity growth strategy.
// Different configurations trade relocation frequency against slack memory.
type Policy struct {
	// Name for this configuration (for benchmarking)
	Name string

	// Factor is the multiplier applied to the current capacity when more
	// room is needed. Must be >= 1.5 to keep appends amortized constant.
	Factor float64

	// MinCapacity is the first nonzero capacity. Growing from an empty
	// buffer jumps here rather than multiplying zero.
	MinCapacity int
}

// Predefined configurations.
var (
	// Default: classic doubling. Good general-purpose behavior.
	PolicyDefault = Policy{
		Name:        "Default",
		Factor:      2.0,
		MinCapacity: 4,
	}

	// Tight: slower growth, less slack. Suits long-lived buffers whose
	// final size is unknown but memory matters.
	PolicyTight = Policy{
		Name:        "Tight",
		Factor:      1.5,
		MinCapacity: 8,
	}

	// Aggressive: fewer relocations at the cost of slack. Suits short-lived
	// scratch buffers filled in bursts.
	PolicyAggressive = Policy{
		Name:        "Aggressive",
		Factor:      3.0,
		MinCapacity: 16,
	}
)

// Validate reports whether the policy constants are usable.
func (p Policy) Validate() error {
	if p.Factor < 1.5 {
		return fmt.Errorf("%w: factor %v < 1.5", ErrBadPolicy, p.Factor)
	}
	if p.MinCapacity < 1 {
		return fmt.Errorf("%w: min capacity %d < 1", ErrBadPolicy, p.MinCapacity)
	}
	return nil
}

// Next returns the next capacity for covering required: one factor step
// from current (MinCapacity when current is zero), or required itself when
// that single step still falls short. Equivalently max(step(current),
// required), the classic vector growth rule.
func (p Policy) Next(current, required int) (int, error) {
	if required < 0 {
		return 0, fmt.Errorf("%w: required %d", ErrCapacityOverflow, required)
	}
	if current < 0 {
		return 0, fmt.Errorf("%w: current %d", ErrCapacityOverflow, current)
	}
	if required <= current {
		return current, nil
	}

	next := p.MinCapacity
	if current > 0 {
		f := float64(current) * p.Factor
		if f >= float64(math.MaxInt) {
			// The factor step would leave int range; required itself is a
			// valid int, so jump straight to it.
			return required, nil
		}
		next = int(math.Ceil(f))
		if next <= current {
			next = current + 1 // rounding stalled, force progress
		}
	}
	if next < required {
		// The single factor step cannot cover the request; jump directly
		// to required rather than over-allocating a chain of steps.
		return required, nil
	}
	return next, nil
}

// RequiredFor computes the capacity needed to hold size + extra elements,
// failing when the sum overflows int.
func RequiredFor(size, extra int) (int, error) {
	n, ok := bounds.AddOK(size, extra)
	if !ok {
		return 0, fmt.Errorf("%w: size=%d extra=%d", ErrCapacityOverflow, size, extra)
	}
	return n, nil
}
