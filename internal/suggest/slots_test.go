package suggest

import (
	"testing"

	"inboxzero/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatSlot(t *testing.T) {
	label, ok := formatSlot(models.TimeSlot{
		Start: "2026-09-03T14:00:00Z",
		End:   "2026-09-03T15:30:00Z",
	})
	assert.True(t, ok)
	assert.Equal(t, "Thursday 2:00PM-3:30PM", label)

	_, ok = formatSlot(models.TimeSlot{Start: "tomorrow", End: "2026-09-03T15:30:00Z"})
	assert.False(t, ok)
}

func TestCollectSlots(t *testing.T) {
	availabilities := []models.CalendarAvailability{
		{
			Date: "2026-09-03",
			AvailableSlots: []models.TimeSlot{
				{Start: "2026-09-03T09:00:00Z", End: "2026-09-03T10:00:00Z"},
				{Start: "not-a-time", End: "2026-09-03T11:00:00Z"},
				{Start: "2026-09-03T13:00:00Z", End: "2026-09-03T14:00:00Z"},
			},
		},
		{
			Date: "2026-09-04",
			AvailableSlots: []models.TimeSlot{
				{Start: "2026-09-04T09:00:00Z", End: "2026-09-04T09:30:00Z"},
				{Start: "2026-09-04T15:00:00Z", End: "2026-09-04T16:00:00Z"},
			},
		},
	}

	formatted, firstStart := collectSlots(availabilities)

	// Capped at three, bad slot skipped, first start preserved.
	assert.Equal(t, []string{
		"Thursday 9:00AM-10:00AM",
		"Thursday 1:00PM-2:00PM",
		"Friday 9:00AM-9:30AM",
	}, formatted)
	assert.Equal(t, "2026-09-03T09:00:00Z", firstStart)
}

func TestCollectSlots_Empty(t *testing.T) {
	formatted, firstStart := collectSlots(nil)
	assert.Empty(t, formatted)
	assert.Empty(t, firstStart)
}
