package dto

type ContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}
