package suggest

import (
	"fmt"
	"time"

	"inboxzero/internal/models"
)

// maxFormattedSlots bounds how many free slots a schedule suggestion offers.
const maxFormattedSlots = 3

// formatSlot renders one free window as "Monday 2:00PM-3:30PM".
func formatSlot(slot models.TimeSlot) (string, bool) {
	start, err := time.Parse(time.RFC3339, slot.Start)
	if err != nil {
		return "", false
	}
	end, err := time.Parse(time.RFC3339, slot.End)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s %s-%s",
		start.Format("Monday"),
		start.Format("3:04PM"),
		end.Format("3:04PM"),
	), true
}

// collectSlots flattens availabilities into formatted slot strings (at most
// maxFormattedSlots) and returns the RFC 3339 start of the first slot.
// Unparseable slots are skipped.
func collectSlots(availabilities []models.CalendarAvailability) (formatted []string, firstStart string) {
	for _, availability := range availabilities {
		for _, slot := range availability.AvailableSlots {
			label, ok := formatSlot(slot)
			if !ok {
				continue
			}
			if firstStart == "" {
				firstStart = slot.Start
			}
			formatted = append(formatted, label)
			if len(formatted) == maxFormattedSlots {
				return formatted, firstStart
			}
		}
	}
	return formatted, firstStart
}
