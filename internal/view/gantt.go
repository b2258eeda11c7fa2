package view

import (
	"time"

	"github.com/campanhas/campaigns-backend/internal/model"
)

// MinBarWidth keeps very short campaigns clickable: a bar never renders
// narrower than 2% of the visible window.
const MinBarWidth = 0.02

// Bar positions a campaign on a timeline as fractions of the visible window.
type Bar struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// BarFor computes the timeline bar for a campaign inside [viewStart, viewEnd].
// Bars spanning outside the window are truncated at the window edges. The
// second return value is false when the campaign does not overlap the window.
func BarFor(c *model.Campaign, viewStart, viewEnd time.Time) (Bar, bool) {
	duration := viewEnd.Sub(viewStart)
	if duration <= 0 {
		return Bar{}, false
	}

	start := startOfDay(c.StartDate)
	end := endOfDay(c.EndDate)
	if end.Before(viewStart) || start.After(viewEnd) {
		return Bar{}, false
	}

	if start.Before(viewStart) {
		start = viewStart
	}
	if end.After(viewEnd) {
		end = viewEnd
	}

	left := float64(start.Sub(viewStart)) / float64(duration)
	width := float64(end.Sub(start)) / float64(duration)
	if width < MinBarWidth {
		width = MinBarWidth
	}
	if left+width > 1 {
		left = 1 - width
	}

	return Bar{Left: left, Width: width}, true
}

// TimelineEntry pairs a campaign with its bar for the Gantt endpoint.
type TimelineEntry struct {
	Campaign *model.Campaign `json:"campaign"`
	Bar      Bar             `json:"bar"`
}

// Timeline projects every campaign overlapping the window onto it.
func Timeline(campaigns []*model.Campaign, viewStart, viewEnd time.Time) []TimelineEntry {
	out := []TimelineEntry{}
	for _, c := range campaigns {
		if bar, ok := BarFor(c, viewStart, viewEnd); ok {
			out = append(out, TimelineEntry{Campaign: c, Bar: bar})
		}
	}
	return out
}
