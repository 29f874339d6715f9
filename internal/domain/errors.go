package domain

import "errors"

var (
	// ErrNotFound is returned by stores when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate document")
	// ErrUnavailable wraps failures to reach the backing store.
	ErrUnavailable = errors.New("store unavailable")
)
