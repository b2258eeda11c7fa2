// Package view holds the campaign collection view-model: the pure
// filter/sort/projection logic behind the calendar, Gantt, table and list
// layouts. Nothing in here touches the database or mutates its inputs.
package view

import (
	"time"

	"github.com/campanhas/campaigns-backend/internal/model"
)

// FilterSpec narrows the visible campaign set. An absent field or empty set
// means "no constraint on that dimension". Values combine as OR within a
// dimension and AND across dimensions.
type FilterSpec struct {
	Institutions []string               `json:"institutions,omitempty"`
	Statuses     []model.CampaignStatus `json:"statuses,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
	Creators     []string               `json:"creators,omitempty"`
	Areas        []string               `json:"areas,omitempty"`
	Positions    []string               `json:"positions,omitempty"`
	StartDate    *time.Time             `json:"startDate,omitempty"`
	EndDate      *time.Time             `json:"endDate,omitempty"`
}

// Matches reports whether the campaign satisfies every populated dimension.
// The date range expresses "campaigns whose active window overlaps the
// requested window", not a calendar-day equality test.
func (f FilterSpec) Matches(c *model.Campaign) bool {
	if len(f.Institutions) > 0 && !contains(f.Institutions, c.Institution) {
		return false
	}

	if len(f.Statuses) > 0 {
		ok := false
		for _, s := range f.Statuses {
			if c.Status == s {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(f.Tags) > 0 && !intersects(f.Tags, c.TagsRelated) && !intersects(f.Tags, c.TagsExcluded) {
		return false
	}

	if len(f.Creators) > 0 && !contains(f.Creators, c.CreatedBy) {
		return false
	}

	// Campaigns do not carry area or position attributes yet, so these
	// dimensions are accepted but never exclude anything.

	if f.StartDate != nil {
		if endOfDay(c.EndDate).Before(startOfDay(*f.StartDate)) {
			return false
		}
	}

	if f.EndDate != nil {
		if startOfDay(c.StartDate).After(endOfDay(*f.EndDate)) {
			return false
		}
	}

	return true
}

// Apply returns the campaigns matching the filter, preserving input order.
func (f FilterSpec) Apply(campaigns []*model.Campaign) []*model.Campaign {
	out := []*model.Campaign{}
	for _, c := range campaigns {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(set, values []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}
