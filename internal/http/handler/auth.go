package handler

import (
	"errors"
	"net/http"
	"strings"

	"diary/internal/account"
	"diary/internal/apperror"
	"diary/internal/oauth"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Accounts *account.Store
	Provider oauth.Provider
	Validate *validator.Validate
	Log      *zap.Logger
}

type signUpReq struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type googleReq struct {
	Code string `json:"code" validate:"required"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Email = account.EmailKey(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if !h.valid(w, req, "email, name and password are required") {
		return
	}

	m, err := h.Accounts.Register(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, account.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	case errors.Is(err, account.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already used")
		return
	case err != nil:
		h.Log.Error("register failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.Log.Info("member registered", zap.Uint64("member_id", m.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"memberId": m.ID,
		"name":     m.Name,
		"email":    m.Email,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Email = account.EmailKey(req.Email)
	if !h.valid(w, req, "email and password are required") {
		return
	}

	if _, err := h.Accounts.Authenticate(req.Email, req.Password); err != nil {
		if errors.Is(err, account.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid input")
			return
		}
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "login success",
		"isLogined": 1,
	})
}

func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req googleReq
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if !h.valid(w, req, "code is required") {
		return
	}

	id, err := h.Provider.Exchange(r.Context(), req.Code)
	if err != nil {
		h.writeOAuthError(w, err)
		return
	}

	m, err := h.Accounts.AuthenticateExternal(id.Email, id.Name)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "no usable email from google")
		return
	}

	h.Log.Info("google login", zap.Uint64("member_id", m.ID))
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "google login success",
		"isLogined": 1,
		"memberId":  m.ID,
		"email":     m.Email,
	})
}

func (h *AuthHandler) GoogleURL(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	u, err := h.Provider.AuthCodeURL(state)
	if err != nil {
		h.writeOAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"url":   u,
		"state": state,
	})
}

func (h *AuthHandler) writeOAuthError(w http.ResponseWriter, err error) {
	var upstream *oauth.UpstreamError
	switch {
	case errors.Is(err, oauth.ErrNotConfigured):
		h.Log.Error("google login not configured")
		writeError(w, http.StatusInternalServerError, "google oauth is not configured")
	case errors.Is(err, oauth.ErrInvalidGrant):
		writeError(w, http.StatusUnauthorized, "invalid or expired code")
	case errors.Is(err, oauth.ErrNoAccessToken):
		writeError(w, http.StatusUnauthorized, "no access token from google")
	case errors.Is(err, oauth.ErrNoEmail):
		writeError(w, http.StatusUnauthorized, "no email from google")
	case errors.As(err, &upstream):
		h.Log.Error("google upstream failure", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "google oauth failed",
			"detail":  upstream.Detail,
		})
	default:
		h.Log.Error("google oauth failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "google oauth failed",
			"detail":  err.Error(),
		})
	}
}

func (h *AuthHandler) valid(w http.ResponseWriter, req any, msg string) bool {
	if err := h.Validate.Struct(req); err != nil {
		h.Log.Debug("validation failed", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": msg,
			"errors":  apperror.FieldErrors(err),
		})
		return false
	}
	return true
}
