package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campanhas/campaigns-backend/internal/repository"
)

// LookupHandler serves the small reference sets the admin UI populates
// its dropdowns from.
type LookupHandler struct {
	Tags         repository.TagRepositoryInterface
	Institutions repository.InstitutionRepositoryInterface
	Positions    repository.PositionRepositoryInterface
	Log          zerolog.Logger
}

func (h *LookupHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Tags.ListAll()
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (h *LookupHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	institutions, err := h.Institutions.ListAll()
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, institutions)
}

func (h *LookupHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Positions.ListAll()
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, positions)
}
