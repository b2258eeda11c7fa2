package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/service"
)

type AttachmentHandler struct {
	Service *service.AttachmentService
	Log     zerolog.Logger
}

func NewAttachmentHandler(svc *service.AttachmentService, log zerolog.Logger) *AttachmentHandler {
	return &AttachmentHandler{Service: svc, Log: log}
}

func (h *AttachmentHandler) ListForCampaign(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.Service.ListForCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, attachments)
}

// Upload accepts a multipart form with a single "file" part.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(model.MaxFileSize); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("file", "invalid multipart payload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, h.Log, appErrors.NewValidation("file", "file part is required"))
		return
	}
	defer file.Close()

	attachment, err := h.Service.Upload(r.Context(),
		chi.URLParam(r, "id"),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, attachment)
}

func (h *AttachmentHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	attachment, err := h.Service.Rename(chi.URLParam(r, "id"), body.DisplayName)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, attachment)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
