package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/payload"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/usecase"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/validation"
)

// AuthHTTPHandler serves the four authentication operations over HTTP.
type AuthHTTPHandler struct {
	authUsecase          usecase.AuthUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
	validator            *validation.Validator
	logger               *zerolog.Logger
}

// NewAuthHTTPHandler creates a new AuthHTTPHandler.
func NewAuthHTTPHandler(
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authUsecase:          authUsecase,
		passwordResetUsecase: passwordResetUsecase,
		validator:            validator,
		logger:               logger,
	}
}

// RegisterRoutes mounts the handler's routes on the given router.
func (h *AuthHTTPHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/forgot-password", h.ForgotPassword)
	r.Get("/api/reset-password/{token}", h.ValidateResetToken)
	r.Put("/api/reset-password/{token}", h.ResetPassword)
}

func (h *AuthHTTPHandler) respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload.MessageResponse{Message: message}); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response body")
	}
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On failure it writes the error response itself and returns false.
func (h *AuthHTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if msg := h.validator.ValidateStruct(dst); msg != "" {
		h.respondMessage(w, http.StatusBadRequest, msg)
		return false
	}

	return true
}
