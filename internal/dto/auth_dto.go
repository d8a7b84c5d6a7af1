package dto

// LoginRequest is the operator sign-in form.
type LoginRequest struct {
	Password string `form:"password" validate:"required"`
}
