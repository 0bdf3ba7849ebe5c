package entity

import "github.com/askardaffa/contact-api/database/model"

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest carries a partial profile update. Absent fields are left
// untouched.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
