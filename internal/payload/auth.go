package payload

// RegisterRequest is the body for POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest is the body for POST /api/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body for PUT /api/reset-password/{token}.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// MessageResponse is the generic confirmation/failure body every operation returns.
type MessageResponse struct {
	Message string `json:"message"`
}
