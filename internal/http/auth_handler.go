package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elitecart/storefront/internal/auth"
	"github.com/elitecart/storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(auth *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPRequestDTO struct {
	Phone string `json:"phone"`
	Code  string `json:"code,omitempty"`
}

type ResetPasswordRequestDTO struct {
	Email string `json:"email"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "name, email and password are required")
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.logger.Error("registration failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.auth.CurrentUser()
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "not logged in")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), req)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "not logged in")
		return
	}
	if err != nil {
		h.logger.Error("profile update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var req domain.Address
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	address, err := h.auth.AddAddress(r.Context(), req)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "not logged in")
		return
	}
	if err != nil {
		h.logger.Error("add address failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add address")
		return
	}

	respondJSON(w, http.StatusCreated, address)
}

func (h *AuthHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var req domain.Address
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	req.ID = chi.URLParam(r, "id")

	err := h.auth.UpdateAddress(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", "not logged in")
	case errors.Is(err, auth.ErrAddressNotFound):
		respondError(w, http.StatusNotFound, "not_found", "address not found")
	case err != nil:
		h.logger.Error("update address failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update address")
	default:
		respondJSON(w, http.StatusOK, req)
	}
}

func (h *AuthHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	err := h.auth.DeleteAddress(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", "not logged in")
	case errors.Is(err, auth.ErrAddressNotFound):
		respondError(w, http.StatusNotFound, "not_found", "address not found")
	case err != nil:
		h.logger.Error("delete address failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete address")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Phone == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "phone is required")
		return
	}

	if err := h.auth.SendOTP(r.Context(), req.Phone); err != nil {
		h.logger.Error("send otp failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to send OTP")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "verification code sent"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Phone == "" || req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "phone and code are required")
		return
	}

	err := h.auth.VerifyOTP(r.Context(), req.Phone, req.Code)
	if errors.Is(err, auth.ErrInvalidOTP) {
		respondError(w, http.StatusUnauthorized, "invalid_otp", "Please enter the correct verification code")
		return
	}
	if err != nil {
		h.logger.Error("verify otp failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "verification failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "phone verified"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email is required")
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Email); err != nil {
		h.logger.Error("password reset failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "reset failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "password reset instructions sent"})
}
