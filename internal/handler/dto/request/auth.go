package request

import "parking-reservation/internal/usecase/commands"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
}

func (r RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
		FullName: r.FullName,
		Gender:   r.Gender,
		Address:  r.Address,
		Pincode:  r.Pincode,
	}
}

// LoginRequest accepts a username, email or phone number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (r ResetPasswordRequest) ToInput() commands.ResetPasswordInput {
	return commands.ResetPasswordInput{
		Username:    r.Username,
		Email:       r.Email,
		NewPassword: r.NewPassword,
	}
}
