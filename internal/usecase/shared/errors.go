package shared

import (
	"context"
	"errors"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/errs"
)

var categories = []error{
	errs.ErrNoAvailableSpot,
	errs.ErrAlreadyCompleted,
	errs.ErrSpotsOccupied,
	errs.ErrConstraintViolation,
	errs.ErrStorageFailure,
	errs.ErrNotFound,
}

// Categorize marks err with the error category the HTTP layer branches on.
// Errors that already carry a category are returned unchanged.
func Categorize(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.IsAny(err, categories...):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsIntegrityViolation(err):
		return errs.Mark(err, errs.ErrConstraintViolation)
	default:
		return errs.Mark(err, errs.ErrStorageFailure)
	}
}
