package commands

import (
	"parking-reservation/internal/pkg/errs"
)

var (
	ErrLotNotFound         = errs.Mark(errs.New("lot not found"), errs.ErrNotFound)
	ErrSpotNotFound        = errs.Mark(errs.New("spot not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)

	ErrDuplicateLot     = errs.Mark(errs.New("a lot with this name already exists at this pincode"), errs.ErrConstraintViolation)
	ErrDuplicateAccount = errs.Mark(errs.New("account already registered"), errs.ErrConstraintViolation)
	ErrAdminToggle      = errs.Mark(errs.New("admin accounts cannot be toggled"), errs.ErrConstraintViolation)
	ErrResetRejected    = errs.Mark(errs.New("invalid username or email"), errs.ErrInvalidInput, errs.ErrConstraintViolation)

	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

func invalidInput(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput, errs.ErrConstraintViolation)
}
