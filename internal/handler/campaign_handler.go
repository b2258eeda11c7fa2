package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	appErrors "github.com/campanhas/campaigns-backend/internal/errors"
	"github.com/campanhas/campaigns-backend/internal/model"
	"github.com/campanhas/campaigns-backend/internal/service"
	"github.com/campanhas/campaigns-backend/internal/view"
)

type CampaignHandler struct {
	Service *service.CampaignService
	Log     zerolog.Logger
}

func NewCampaignHandler(svc *service.CampaignService, log zerolog.Logger) *CampaignHandler {
	return &CampaignHandler{Service: svc, Log: log}
}

// csvParam reads a query parameter that may be repeated or
// comma-separated and returns the non-empty values.
func csvParam(r *http.Request, name string) []string {
	var out []string
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func dateParam(r *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, appErrors.NewValidation(name, "invalid date, expected YYYY-MM-DD")
}

func statusParam(r *http.Request) []model.CampaignStatus {
	var out []model.CampaignStatus
	for _, s := range csvParam(r, "statuses") {
		out = append(out, model.CampaignStatus(s))
	}
	return out
}

func filterFromQuery(r *http.Request) (view.FilterSpec, error) {
	filter := view.FilterSpec{
		Institutions: csvParam(r, "institutions"),
		Statuses:     statusParam(r),
		Tags:         csvParam(r, "tags"),
		Creators:     csvParam(r, "creators"),
		Areas:        csvParam(r, "areas"),
		Positions:    csvParam(r, "positions"),
	}
	start, err := dateParam(r, "startDate")
	if err != nil {
		return filter, err
	}
	end, err := dateParam(r, "endDate")
	if err != nil {
		return filter, err
	}
	filter.StartDate = start
	filter.EndDate = end
	return filter, nil
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	sortKey := view.SortKey(r.URL.Query().Get("sort"))
	query := r.URL.Query().Get("q")

	campaigns, err := h.Service.ListCampaigns(filter, sortKey, query)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.GetCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form service.CampaignForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	campaign, err := h.Service.CreateCampaign(&form)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.CampaignPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	campaign, err := h.Service.UpdateCampaign(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.CampaignStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.Log, appErrors.NewValidation("body", "invalid JSON payload"))
		return
	}
	campaign, err := h.Service.UpdateStatus(chi.URLParam(r, "id"), body.Status)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.Duplicate(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCampaign(chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CampaignHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	start, err := dateParam(r, "start")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	end, err := dateParam(r, "end")
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	if start == nil || end == nil {
		writeError(w, h.Log, appErrors.NewValidation("start", "start and end are required"))
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	entries, err := h.Service.Timeline(filter, *start, *end)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *CampaignHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("month")
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		writeError(w, h.Log, appErrors.NewValidation("month", "expected YYYY-MM"))
		return
	}
	year, errY := strconv.Atoi(parts[0])
	monthNum, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || monthNum < 1 || monthNum > 12 {
		writeError(w, h.Log, appErrors.NewValidation("month", "expected YYYY-MM"))
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	days, err := h.Service.CalendarMonth(filter, year, time.Month(monthNum))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}
