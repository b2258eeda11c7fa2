package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/campanhas/campaigns-backend/internal/service"
)

type HistoryHandler struct {
	Service *service.HistoryService
	Log     zerolog.Logger
}

func NewHistoryHandler(svc *service.HistoryService, log zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{Service: svc, Log: log}
}

func (h *HistoryHandler) ListForCampaign(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.ListForCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
