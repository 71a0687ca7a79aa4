package handler

import (
	"errors"
	"net/http"

	"diary/internal/diary"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiaryHandler struct {
	Diaries *diary.Store
	Log     *zap.Logger
}

// Replace handles POST /diary/{date}.
func (h *DiaryHandler) Replace(w http.ResponseWriter, r *http.Request) {
	date, ok := h.date(w, r)
	if !ok {
		return
	}

	var in diary.Input
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	flags, err := h.Diaries.Replace(date, in)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

// Merge handles PUT /diary/{date}.
func (h *DiaryHandler) Merge(w http.ResponseWriter, r *http.Request) {
	date, ok := h.date(w, r)
	if !ok {
		return
	}

	var p diary.Patch
	if err := decodeBody(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	flags, err := h.Diaries.Merge(date, p)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flags)
}

// Read handles GET /diary/{date}.
func (h *DiaryHandler) Read(w http.ResponseWriter, r *http.Request) {
	date, ok := h.date(w, r)
	if !ok {
		return
	}

	e, err := h.Diaries.Read(date)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// date rejects a malformed path date before the body is read.
func (h *DiaryHandler) date(w http.ResponseWriter, r *http.Request) (string, bool) {
	date, ok := diary.NormalizeDate(chi.URLParam(r, "date"))
	if !ok {
		writeError(w, http.StatusBadRequest, diary.ErrInvalidDate.Error())
		return "", false
	}
	return date, true
}

func (h *DiaryHandler) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, diary.ErrInvalidDate) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.Log.Error("diary store failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "server error")
}
