package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/service"
)

type ProfileHandler struct {
	Service *service.UserService
	Log     zerolog.Logger
}

func NewProfileHandler(svc *service.UserService, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{Service: svc, Log: log}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.SystemUser()
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	user, err := h.Service.UpdateProfile(patch)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
