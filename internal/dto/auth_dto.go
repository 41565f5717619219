package dto

type SignupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Username *string `json:"username" validate:"omitempty,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	Id       string  `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username,omitempty"`
}

type SignupResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
