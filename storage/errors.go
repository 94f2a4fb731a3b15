package storage

import "errors"

var (
	// ErrBudget indicates the allocation budget could not cover a request.
	ErrBudget = errors.New("storage: allocation budget exceeded")

	// ErrBadCount indicates a negative or int-overflowing slot count.
	ErrBadCount = errors.New("storage: bad slot count")
)
