package commands

import (
	"context"
	"log/slog"

	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/commands/user_mock.go -package=commandsmock parking-reservation/internal/usecase/commands UserCommands

type UserCommands interface {
	// UpdateProfile edits contact and profile fields. Email and phone stay unique.
	UpdateProfile(ctx context.Context, userID int64, in ProfileInput) error
	// DeactivateSelf soft-deletes the caller's account.
	DeactivateSelf(ctx context.Context, userID int64) error
	// ToggleUser flips is_active for a regular user and returns the new value.
	ToggleUser(ctx context.Context, userID int64) (bool, error)
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (uc *userCommandsImpl) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) error {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return invalidInput(err)
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return invalidInput(err)
	}
	profile, err := buildProfile(in.FullName, in.Gender, in.Address, in.Pincode)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !u.IsActive() {
			return ErrUserNotFound
		}
		if err := u.UpdateProfile(email, phone, profile); err != nil {
			return invalidInput(err)
		}
		if err := tx.Users().UpdateProfile(ctx, u); err != nil {
			return duplicateAccount(err)
		}
		return nil
	})
	if err != nil {
		return shared.Categorize(err)
	}

	slog.Info("user profile updated", "user_id", userID)
	return nil
}

func (uc *userCommandsImpl) DeactivateSelf(ctx context.Context, userID int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := u.CanDeactivate(); err != nil {
			return errs.Mark(err, errs.ErrConstraintViolation)
		}
		return tx.Users().SetActive(ctx, userID, false)
	})
	if err != nil {
		return shared.Categorize(err)
	}

	slog.Info("user deactivated", "user_id", userID)
	return nil
}

func (uc *userCommandsImpl) ToggleUser(ctx context.Context, userID int64) (bool, error) {
	var active bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if u.Role() == user.RoleAdmin {
			return ErrAdminToggle
		}
		if u.IsActive() {
			if err := u.CanDeactivate(); err != nil {
				return errs.Mark(err, errs.ErrConstraintViolation)
			}
		}
		active = !u.IsActive()
		return tx.Users().SetActive(ctx, userID, active)
	})
	if err != nil {
		return false, shared.Categorize(err)
	}
	return active, nil
}

func lockUser(ctx context.Context, tx shared.Tx, userID int64) (*user.User, error) {
	u, err := tx.Users().FindByIDForUpdate(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
