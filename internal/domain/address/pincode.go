package address

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPincode = errors.New("pincode must be exactly 6 digits")

var pincodeRegex = regexp.MustCompile(`^[0-9]{6}$`)

// Pincode is a six digit postal code, shared by lots and user profiles.
type Pincode struct {
	value string
}

func NewPincode(s string) (Pincode, error) {
	s = strings.TrimSpace(s)
	if !pincodeRegex.MatchString(s) {
		return Pincode{}, ErrInvalidPincode
	}
	return Pincode{value: s}, nil
}

func (p Pincode) String() string {
	return p.value
}

func (p Pincode) IsZero() bool {
	return p.value == ""
}
