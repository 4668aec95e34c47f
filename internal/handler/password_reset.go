package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/payload"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/usecase"
)

// ForgotPassword handles POST /api/forgot-password. The success message is
// returned whether or not the email maps to an account.
func (h *AuthHTTPHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req payload.ForgotPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.passwordResetUsecase.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.logger.Error().Err(err).Msg("failed to request password reset")
		h.respondMessage(w, http.StatusBadRequest, "Failed to send password reset link")
		return
	}

	h.respondMessage(w, http.StatusOK, "Password reset link sent to your email")
}

// ResetPassword handles PUT /api/reset-password/{token}.
func (h *AuthHTTPHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	tokenValue := chi.URLParam(r, "token")

	var req payload.ResetPasswordRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.passwordResetUsecase.ResetPassword(r.Context(), tokenValue, req.Password)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to reset password")

		switch {
		case errors.Is(err, usecase.ErrTokenNotFound), errors.Is(err, usecase.ErrTokenExpired):
			h.respondMessage(w, http.StatusBadRequest, "Invalid or expired password reset token")
		default:
			h.respondMessage(w, http.StatusBadRequest, "Password reset failed")
		}
		return
	}

	h.respondMessage(w, http.StatusOK, "Password reset successful")
}

// ValidateResetToken handles GET /api/reset-password/{token}. It lets a
// client check a link before presenting the new-password form; the token is
// not consumed.
func (h *AuthHTTPHandler) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	tokenValue := chi.URLParam(r, "token")

	err := h.passwordResetUsecase.ValidatePasswordResetToken(r.Context(), tokenValue)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to validate password reset token")

		switch {
		case errors.Is(err, usecase.ErrTokenNotFound), errors.Is(err, usecase.ErrTokenExpired):
			h.respondMessage(w, http.StatusBadRequest, "Invalid or expired password reset token")
		default:
			h.respondMessage(w, http.StatusBadRequest, "Password reset failed")
		}
		return
	}

	h.respondMessage(w, http.StatusOK, "Password reset token is valid")
}
