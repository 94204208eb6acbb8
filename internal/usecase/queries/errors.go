package queries

import "parking-reservation/internal/pkg/errs"

var (
	ErrLotNotFound         = errs.Mark(errs.New("lot not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrInvalidCursor       = errs.Mark(errs.New("invalid cursor"), errs.ErrInvalidInput, errs.ErrConstraintViolation)
	ErrInvalidSort         = errs.Mark(errs.New("sort must be one of name, pincode, spots, price, revenue"), errs.ErrInvalidInput, errs.ErrConstraintViolation)
	ErrInvalidSpotSort     = errs.Mark(errs.New("sort must be one of id, spot_number, status, total_parking"), errs.ErrInvalidInput, errs.ErrConstraintViolation)
	ErrInvalidUserSort     = errs.Mark(errs.New("sort must be one of id, username, email, total_parking"), errs.ErrInvalidInput, errs.ErrConstraintViolation)
)
