package commands

import (
	"context"
	"log/slog"
	"strings"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/commands/auth_mock.go -package=commandsmock parking-reservation/internal/usecase/commands AuthCommands

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (int64, error)
	// Login accepts a username, email or phone as identifier.
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// ResetPassword sets a new password when username and email belong to
	// the same active account.
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		clock:  clk,
	}
}

var duplicateFields = map[string]string{
	"users_username_key": "username",
	"users_email_key":    "email",
	"users_phone_key":    "phone",
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (int64, error) {
	u, err := a.newUser(in)
	if err != nil {
		return 0, err
	}

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, u)
		if err != nil {
			return duplicateAccount(err)
		}
		userID = id
		return nil
	})
	if err != nil {
		return 0, shared.Categorize(err)
	}

	slog.Info("user registered", "user_id", userID)
	return userID, nil
}

func (a *authCommandsImpl) newUser(in RegisterInput) (*user.User, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, invalidInput(err)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, invalidInput(err)
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, invalidInput(err)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, invalidInput(err)
	}

	profile, err := buildProfile(in.FullName, in.Gender, in.Address, in.Pincode)
	if err != nil {
		return nil, err
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(username, email, phone, hash, user.RoleUser, profile)
	if err != nil {
		return nil, invalidInput(err)
	}
	return u, nil
}

// duplicateAccount names the clashing field when a unique key rejects the write.
func duplicateAccount(err error) error {
	var repoErr infra.RepositoryError
	if !errs.As(err, &repoErr) || repoErr.Kind != infra.KindDuplicateKey {
		return err
	}
	if field, ok := duplicateFields[repoErr.Constraint]; ok {
		return errs.Mark(errs.Newf("%s already registered", field), ErrDuplicateAccount, errs.ErrConstraintViolation)
	}
	return ErrDuplicateAccount
}

// buildProfile treats gender and pincode as optional.
func buildProfile(fullName, gender, addr, pincode string) (user.Profile, error) {
	profile := user.Profile{FullName: fullName, Address: addr}
	if g := strings.ToLower(strings.TrimSpace(gender)); g != "" {
		parsed, err := user.NewGender(g)
		if err != nil {
			return user.Profile{}, invalidInput(err)
		}
		profile.Gender = &parsed
	}
	if p := strings.TrimSpace(pincode); p != "" {
		parsed, err := address.NewPincode(p)
		if err != nil {
			return user.Profile{}, invalidInput(err)
		}
		profile.Pincode = &parsed
	}
	return profile, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	identifier, err := user.NewIdentifier(in.Identifier)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByIdentifier(ctx, identifier)
		if err != nil {
			return err
		}
		found = u
		return nil
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, shared.Categorize(err)
	}

	if err := a.hasher.Compare(found.PasswordHash(), in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.IsActive() {
		return nil, ErrUserInactive
	}

	token, err := a.tokens.GenerateToken(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, found.ID(), a.clock.Now())
	})
	if err != nil {
		// login succeeded; only the last_login bookkeeping failed
		slog.Warn("failed to update last login", "user_id", found.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      found.ID(),
		Role:        found.Role(),
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return ErrResetRejected
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return ErrResetRejected
	}
	pw, err := user.NewPassword(in.NewPassword)
	if err != nil {
		return invalidInput(err)
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return err
	}

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByUsernameForUpdate(ctx, username)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResetRejected
			}
			return err
		}
		// unknown user, wrong email and inactive account look the same to the caller
		if err := u.ResetPassword(username, email, hash); err != nil {
			return ErrResetRejected
		}
		userID = u.ID()
		return tx.Users().UpdatePassword(ctx, u.ID(), u.PasswordHash())
	})
	if err != nil {
		return shared.Categorize(err)
	}

	slog.Info("password reset", "user_id", userID)
	return nil
}
