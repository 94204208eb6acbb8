package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrInvalidUsername = errors.New("username must be 3-40 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidPhone    = errors.New("phone must be exactly 10 digits")
	ErrInvalidName     = errors.New("name must be 1-64 characters")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9._\-]{3,40}$`)
	phoneRegex    = regexp.MustCompile(`^[0-9]{10}$`)
)

// Identity values are stored lower-cased so uniqueness is case-insensitive.

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > 64 || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Identifier is a login handle: username, email or phone.
type Identifier struct {
	value string
}

func NewIdentifier(s string) (Identifier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > 64 {
		return Identifier{}, ErrInvalidUsername
	}
	return Identifier{value: s}, nil
}

func (i Identifier) Value() string {
	return i.value
}
