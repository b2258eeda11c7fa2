package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
)

type errorBody struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses and the
// {error, errorCode, hint} wire shape.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var (
		status = http.StatusInternalServerError
		body   = errorBody{Error: err.Error()}
	)

	var campaignNotFound *appErrors.ErrCampaignNotFound
	var commentNotFound *appErrors.ErrCommentNotFound
	var attachmentNotFound *appErrors.ErrAttachmentNotFound
	var institutionNotFound *appErrors.ErrInstitutionNotFound
	var systemUserMissing *appErrors.ErrSystemUserMissing
	var validation *appErrors.ErrValidation

	switch {
	case errors.As(err, &campaignNotFound),
		errors.As(err, &commentNotFound),
		errors.As(err, &attachmentNotFound):
		status = http.StatusNotFound
	case errors.As(err, &institutionNotFound):
		status = http.StatusBadRequest
		body.ErrorCode = institutionNotFound.Code()
		body.Hint = institutionNotFound.Hint()
	case errors.As(err, &systemUserMissing):
		status = http.StatusInternalServerError
		body.ErrorCode = systemUserMissing.Code()
		body.Hint = systemUserMissing.Hint()
	case errors.As(err, &validation):
		status = http.StatusBadRequest
		body.ErrorCode = validation.Code()
	default:
		log.Error().Err(err).Msg("Request failed")
	}

	writeJSON(w, status, body)
}
