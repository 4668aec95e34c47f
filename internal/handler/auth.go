package handler

import (
	"net/http"

	"github.com/ananyasrikanth2101/password-reset-backend/internal/payload"
	"github.com/ananyasrikanth2101/password-reset-backend/internal/usecase"
)

// Register handles POST /api/register. Every failure, including a duplicate
// email, collapses into the same generic message.
func (h *AuthHTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		h.logger.Error().Err(err).Msg("failed to register user")
		h.respondMessage(w, http.StatusBadRequest, "User registration failed")
		return
	}

	h.respondMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles POST /api/login. An unknown email and a wrong password
// produce the same response so the endpoint cannot be used to enumerate
// registered accounts.
func (h *AuthHTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		h.logger.Error().Err(err).Msg("failed to log in user")
		h.respondMessage(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	h.respondMessage(w, http.StatusOK, "Login successful")
}
