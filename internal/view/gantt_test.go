package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campanhas/campaigns-backend/internal/model"
)

func TestBarForClampsToWindow(t *testing.T) {
	viewStart := day(2025, 1, 1)
	viewEnd := day(2025, 2, 1)

	// Spills out on both sides: the bar fills the whole window.
	c := campaign("wide", "PUCRS", model.StatusDraft, day(2024, 12, 1), day(2025, 3, 1))
	bar, ok := BarFor(c, viewStart, viewEnd)

	assert.True(t, ok)
	assert.Equal(t, 0.0, bar.Left)
	assert.InDelta(t, 1.0, bar.Width, 0.001)
}

func TestBarForMinimumWidth(t *testing.T) {
	// 1-day campaign inside a 1-year window.
	viewStart := day(2025, 1, 1)
	viewEnd := day(2026, 1, 1)
	c := campaign("short", "PUCRS", model.StatusDraft, day(2025, 6, 1), day(2025, 6, 1))

	bar, ok := BarFor(c, viewStart, viewEnd)

	assert.True(t, ok)
	assert.GreaterOrEqual(t, bar.Width, MinBarWidth)
}

func TestBarForOutsideWindow(t *testing.T) {
	viewStart := day(2025, 1, 1)
	viewEnd := day(2025, 2, 1)
	c := campaign("gone", "PUCRS", model.StatusDraft, day(2025, 3, 1), day(2025, 3, 15))

	_, ok := BarFor(c, viewStart, viewEnd)
	assert.False(t, ok)
}

func TestBarForProportions(t *testing.T) {
	// 10-day window; campaign covers days 3 and 4.
	viewStart := day(2025, 1, 1)
	viewEnd := day(2025, 1, 11)
	c := campaign("mid", "PUCRS", model.StatusDraft, day(2025, 1, 3), day(2025, 1, 4))

	bar, ok := BarFor(c, viewStart, viewEnd)

	assert.True(t, ok)
	assert.InDelta(t, 0.2, bar.Left, 0.001)
	assert.InDelta(t, 0.2, bar.Width, 0.001)
}

func TestBarNeverOverflowsWindow(t *testing.T) {
	// Campaign ending on the window's last day with the minimum width applied
	// must stay inside [0, 1].
	viewStart := day(2025, 1, 1)
	viewEnd := day(2026, 1, 1)
	c := campaign("edge", "PUCRS", model.StatusDraft, day(2025, 12, 31), day(2025, 12, 31))

	bar, ok := BarFor(c, viewStart, viewEnd)

	assert.True(t, ok)
	assert.LessOrEqual(t, bar.Left+bar.Width, 1.0)
}

func TestBarForDegenerateWindow(t *testing.T) {
	at := day(2025, 1, 1)
	c := campaign("x", "PUCRS", model.StatusDraft, day(2025, 1, 1), day(2025, 1, 2))

	_, ok := BarFor(c, at, at)
	assert.False(t, ok)
}

func TestTimeline(t *testing.T) {
	viewStart := day(2025, 1, 1)
	viewEnd := day(2025, 2, 1)
	in := campaign("in", "PUCRS", model.StatusDraft, day(2025, 1, 10), day(2025, 1, 20))
	out := campaign("out", "PUCRS", model.StatusDraft, day(2025, 6, 1), day(2025, 6, 2))

	entries := Timeline([]*model.Campaign{in, out}, viewStart, viewEnd)

	assert.Len(t, entries, 1)
	assert.Equal(t, "in", entries[0].Campaign.Name)
}
