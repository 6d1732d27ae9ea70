package api

import (
	"net/http"

	"jobunyacar-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
	FullName        string  `json:"full_name"`
	PhoneNumber     string  `json:"phone_number"`
	LicenseNumber   *string `json:"license_number"`
	AgreeTerms      bool    `json:"agree_terms"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.authSvc.Register(r.Context(), service.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		LicenseNumber:   req.LicenseNumber,
		AgreeTerms:      req.AgreeTerms,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.authSvc.VerifyEmail(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	access, refresh, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	access, refresh, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	// A missing body is fine here; logout carries no required state.
	_ = decodeJSON(r, &req)
	if err := h.authSvc.Logout(r.Context(), req.RefreshToken); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.authSvc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "if the account exists, a reset email has been sent"})
}

type passwordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.authSvc.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

type passwordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordChangeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	err := h.authSvc.ChangePassword(r.Context(), principalFrom(r.Context()), req.OldPassword, req.NewPassword)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
