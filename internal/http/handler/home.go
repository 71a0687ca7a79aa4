package handler

import (
	"net/http"

	"diary/internal/account"
	"diary/internal/diary"

	"go.uber.org/zap"
)

type HomeHandler struct {
	Accounts *account.Store
	Diaries  *diary.Store
	Log      *zap.Logger
}

type logoutReq struct {
	Email string `json:"email"`
}

// Summary marks the calendar: dates with contents and dates with todos.
func (h *HomeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Diaries.Summarize())
}

// Logout never fails; unknown or missing emails still get isLogined 0.
func (h *HomeHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutReq
	if err := decodeBody(r, &req); err != nil {
		h.Log.Debug("logout body ignored", zap.Error(err))
	}

	loggedIn := h.Accounts.EndSession(req.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"isLogined": boolToInt(loggedIn),
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
