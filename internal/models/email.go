package models

import "time"

// Email represents a single inbox message as fetched from the mail provider.
// It is read-only input to the analysis pipeline.
type Email struct {
	ID                     string    `db:"id" json:"id"`
	ThreadID               string    `db:"thread_id" json:"thread_id"`
	From                   string    `db:"sender_email" json:"from"`
	FromName               string    `db:"sender_name" json:"from_name"`
	Subject                string    `db:"subject" json:"subject"`
	Body                   string    `db:"body" json:"body"`
	Date                   time.Time `db:"received_date" json:"date"`
	Snippet                string    `db:"snippet" json:"snippet"`
	IsLinkedInNotification bool      `db:"is_linkedin_notification" json:"is_linkedin_notification"`
	LinkedInProfileURL     string    `db:"linkedin_profile_url" json:"linkedin_profile_url,omitempty"`
}

// TimeSlot is a free window on a calendar, both ends in RFC 3339.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CalendarAvailability holds the free slots found for one requested date.
// Slots are ordered and each is at least the resolver's minimum duration.
type CalendarAvailability struct {
	Date           string     `json:"date"`
	AvailableSlots []TimeSlot `json:"available_slots"`
}
