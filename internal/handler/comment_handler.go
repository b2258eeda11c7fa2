package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/service"
)

type CommentHandler struct {
	Service *service.CommentService
	Log     zerolog.Logger
}

func NewCommentHandler(svc *service.CommentService, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{Service: svc, Log: log}
}

func (h *CommentHandler) ListForCampaign(w http.ResponseWriter, r *http.Request) {
	thread, err := h.Service.ListThread(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form service.CommentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	comment, err := h.Service.Create(chi.URLParam(r, "id"), &form)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	comment, err := h.Service.Update(chi.URLParam(r, "id"), body.Content)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) ToggleImportant(w http.ResponseWriter, r *http.Request) {
	comment, err := h.Service.ToggleImportant(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
