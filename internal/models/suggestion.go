package models

import "time"

// SuggestionType tags the kind of follow-up action a suggestion represents.
type SuggestionType string

const (
	SuggestionSchedule         SuggestionType = "schedule"
	SuggestionDeadline         SuggestionType = "deadline"
	SuggestionFollowup         SuggestionType = "followup"
	SuggestionLinkedInFollowup SuggestionType = "linkedin-followup"
)

// Suggestion is one synthesized, user-facing action recommendation derived
// from a classified email. IDs are deterministic over (email id, kind, and
// for deadlines the parsed deadline epoch), so regenerating suggestions for
// the same inputs yields the same id set and rows can be safely upserted.
type Suggestion struct {
	ID                 string         `json:"id"`
	EmailID            string         `json:"email_id"`
	Type               SuggestionType `json:"type"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	SuggestedTime      string         `json:"suggested_time,omitempty"`
	Deadline           *time.Time     `json:"deadline,omitempty"`
	ActionItems        []string       `json:"action_items"`
	Priority           Priority       `json:"priority"`
	LinkedInProfileURL string         `json:"linkedin_profile_url,omitempty"`
	GeneratedResponse  string         `json:"generated_response,omitempty"`
	TimeSlots          []string       `json:"time_slots,omitempty"`
	AttachmentsNeeded  []string       `json:"attachments_needed,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// SuggestionStatus is the persistence-side lifecycle state of a suggestion.
// The generator always emits pending; completion and dismissal are owned by
// the store.
type SuggestionStatus string

const (
	SuggestionPending   SuggestionStatus = "pending"
	SuggestionCompleted SuggestionStatus = "completed"
	SuggestionDismissed SuggestionStatus = "dismissed"
)
