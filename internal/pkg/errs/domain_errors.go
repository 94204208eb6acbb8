package errs

import "errors"

// Error categories surfaced to the HTTP layer. Command errors are marked with
// one of these so callers can branch on the category without knowing the
// concrete cause.
var (
	// Booking against a full or inactive lot.
	ErrNoAvailableSpot = errors.New("no available spot")
	// Release of a reservation that is already closed. Informational.
	ErrAlreadyCompleted = errors.New("reservation already completed")
	// Shrink beyond the number of currently free spots.
	ErrSpotsOccupied = errors.New("spots occupied")
	// Any write that would break a data invariant or uniqueness rule.
	ErrConstraintViolation = errors.New("constraint violation")
	// Malformed or out-of-range input. Always paired with ErrConstraintViolation.
	ErrInvalidInput = errors.New("invalid input")
	// Transient persistence fault. Safe to retry.
	ErrStorageFailure = errors.New("storage failure")

	ErrNotFound = errors.New("not found")
)
