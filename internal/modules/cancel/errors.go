package cancel

import "errors"

var (
	// ErrNotFound covers both an unknown uid and an already-cancelled
	// booking; the page renders the same terminal message for both.
	ErrNotFound = errors.New("booking not found or already cancelled")
)
