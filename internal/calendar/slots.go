package calendar

import (
	"time"

	"inboxzero/internal/models"
)

// MinSlotDuration is the smallest free window worth offering for a call.
const MinSlotDuration = 30 * time.Minute

// Interval is a busy period on the calendar.
type Interval struct {
	Start time.Time
	End   time.Time
}

// FreeSlots scans the gaps between busy intervals inside the working-hours
// window and returns every gap of at least minDur. Busy intervals must be
// sorted by start time; overlapping intervals are tolerated.
func FreeSlots(busy []Interval, dayStart, dayEnd time.Time, minDur time.Duration) []models.TimeSlot {
	var slots []models.TimeSlot
	cursor := dayStart

	appendSlot := func(start, end time.Time) {
		if end.Sub(start) >= minDur {
			slots = append(slots, models.TimeSlot{
				Start: start.Format(time.RFC3339),
				End:   end.Format(time.RFC3339),
			})
		}
	}

	for _, interval := range busy {
		if interval.Start.After(cursor) {
			appendSlot(cursor, interval.Start)
		}
		if interval.End.After(cursor) {
			cursor = interval.End
		}
	}

	if cursor.Before(dayEnd) {
		appendSlot(cursor, dayEnd)
	}

	return slots
}

// workingWindow resolves a date string plus HH:MM bounds into concrete day
// boundaries in the given location.
func workingWindow(date, startHHMM, endHHMM string, loc *time.Location) (time.Time, time.Time, error) {
	dayStart, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startHHMM, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	dayEnd, err := time.ParseInLocation("2006-01-02 15:04", date+" "+endHHMM, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return dayStart, dayEnd, nil
}
