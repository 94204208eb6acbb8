package reservation

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidVehicleNumber = errors.New("vehicle number must be 6-12 letters or digits")

var vehicleRegex = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// VehicleNumber is a registration plate, normalized to upper case with
// spaces and dashes removed.
type VehicleNumber struct {
	value string
}

func NewVehicleNumber(s string) (VehicleNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	if !vehicleRegex.MatchString(s) {
		return VehicleNumber{}, ErrInvalidVehicleNumber
	}
	return VehicleNumber{value: s}, nil
}

func (v VehicleNumber) String() string {
	return v.value
}
