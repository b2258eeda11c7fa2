package view

import (
	"strings"

	"github.com/campanhas/campaigns-backend/internal/model"
)

// MatchesQuery reports whether the campaign matches a free-text search over
// name, description, institution and both tag sets. Matching is
// case-insensitive substring; an empty query matches everything.
func MatchesQuery(c *model.Campaign, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Description), q) ||
		strings.Contains(strings.ToLower(c.Institution), q) {
		return true
	}
	for _, tag := range c.TagsRelated {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, tag := range c.TagsExcluded {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search filters campaigns by free text, preserving input order.
func Search(campaigns []*model.Campaign, query string) []*model.Campaign {
	out := []*model.Campaign{}
	for _, c := range campaigns {
		if MatchesQuery(c, query) {
			out = append(out, c)
		}
	}
	return out
}
