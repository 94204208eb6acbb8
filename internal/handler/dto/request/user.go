package request

import "parking-reservation/internal/usecase/commands"

// ProfileRequest replaces every editable field. Username and password are
// not part of it.
type ProfileRequest struct {
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

func (r ProfileRequest) ToInput() commands.ProfileInput {
	return commands.ProfileInput{
		Email:    r.Email,
		Phone:    r.Phone,
		FullName: r.FullName,
		Gender:   r.Gender,
		Address:  r.Address,
		Pincode:  r.Pincode,
	}
}
