package view

import (
	"time"

	"github.com/campanhas/campaigns-backend/internal/model"
)

// CoversDay reports whether the campaign's validity window contains the given
// day. The check anchors at noon so that campaigns spanning a timezone
// boundary at midnight do not miss or gain a day.
func CoversDay(c *model.Campaign, day time.Time) bool {
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, day.Location())
	start := startOfDay(c.StartDate)
	end := endOfDay(c.EndDate)
	return !noon.Before(start) && !noon.After(end)
}

// CampaignsOn returns the campaigns active on the given day, preserving order.
func CampaignsOn(campaigns []*model.Campaign, day time.Time) []*model.Campaign {
	out := []*model.Campaign{}
	for _, c := range campaigns {
		if CoversDay(c, day) {
			out = append(out, c)
		}
	}
	return out
}

// DayBucket is one calendar cell: a date and the campaigns covering it.
type DayBucket struct {
	Date      string            `json:"date"` // YYYY-MM-DD
	Campaigns []*model.Campaign `json:"campaigns"`
}

// Month buckets campaigns into the days of the given month.
func Month(campaigns []*model.Campaign, year int, month time.Month) []DayBucket {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	out := []DayBucket{}
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		out = append(out, DayBucket{
			Date:      day.Format("2006-01-02"),
			Campaigns: CampaignsOn(campaigns, day),
		})
	}
	return out
}
