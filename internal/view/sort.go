package view

import (
	"sort"
	"strings"

	"github.com/campanhas/campaigns-backend/internal/model"
)

type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortCreatedAt   SortKey = "createdAt"
	SortStartDate   SortKey = "startDate"
	SortEndDate     SortKey = "endDate"
	SortName        SortKey = "name"
	SortInstitution SortKey = "institution"
	SortStatus      SortKey = "status"
)

// Sort returns a new ordered slice; the input is never mutated. String keys
// compare case-insensitively, date keys by instant, and ties keep the input
// order (stable sort). SortRelevance and unknown keys return a plain copy.
func Sort(campaigns []*model.Campaign, key SortKey) []*model.Campaign {
	out := make([]*model.Campaign, len(campaigns))
	copy(out, campaigns)

	var less func(a, b *model.Campaign) bool
	switch key {
	case SortCreatedAt:
		less = func(a, b *model.Campaign) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortStartDate:
		less = func(a, b *model.Campaign) bool { return a.StartDate.Before(b.StartDate) }
	case SortEndDate:
		less = func(a, b *model.Campaign) bool { return a.EndDate.Before(b.EndDate) }
	case SortName:
		less = func(a, b *model.Campaign) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortInstitution:
		less = func(a, b *model.Campaign) bool {
			return strings.ToLower(a.Institution) < strings.ToLower(b.Institution)
		}
	case SortStatus:
		less = func(a, b *model.Campaign) bool {
			return strings.ToLower(string(a.Status)) < strings.ToLower(string(b.Status))
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
