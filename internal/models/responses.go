package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// ProcessInboxRequest represents the request body for the inbox processing endpoint
// @Description Inbox processing request payload
type ProcessInboxRequest struct {
	AccessToken string `json:"access_token"`          // Google OAuth access token
	UserID      string `json:"user_id"`               // User identifier for preference lookup and persistence
	MaxEmails   int    `json:"max_emails,omitempty"`  // Maximum number of emails to process (default 20)
}

// EmailResult bundles one processed email with its analysis and suggestions
// @Description Single processed email result
type EmailResult struct {
	Email            Email        `json:"email"`
	Analysis         *Analysis    `json:"analysis"`
	Score            int          `json:"score"`                       // Priority score 0-100
	DefinitiveAction string       `json:"definitive_action"`           // Single next action for this email
	Suggestions      []Suggestion `json:"suggestions"`
	ClassifyError    string       `json:"classify_error,omitempty"` // Set when the classifier failed and a default analysis was substituted
}

// ProcessInboxResponse represents the response from the inbox processing endpoint
// @Description Inbox processing response payload
type ProcessInboxResponse struct {
	Results        []EmailResult `json:"results"` // Ranked by score, highest first
	EmailsFetched  int           `json:"emails_fetched"`
	EmailsSkipped  int           `json:"emails_skipped,omitempty"`  // Already-seen emails skipped by dedup
	RateLimited    bool          `json:"rate_limited,omitempty"`    // True when classification halted early on a rate limit
	Error          string        `json:"error,omitempty"`
}

// PreferencesResponse wraps a user's stored preferences
// @Description User preferences payload
type PreferencesResponse struct {
	Preferences UserPreferences `json:"preferences"`
	Error       string          `json:"error,omitempty"`
}

// SuggestionsResponse lists stored suggestions
// @Description Stored suggestions payload
type SuggestionsResponse struct {
	Suggestions []StoredSuggestion `json:"suggestions"`
	Error       string             `json:"error,omitempty"`
}

// StoredSuggestion is a suggestion row as persisted, including its status
// @Description Persisted suggestion with lifecycle status
type StoredSuggestion struct {
	Suggestion
	Status SuggestionStatus `json:"status" example:"pending"`
}

// StatusResponse is a generic success/error envelope
// @Description Generic operation result
type StatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty" example:""`
}

// AuthURLResponse carries the Google consent URL
// @Description OAuth consent URL payload
type AuthURLResponse struct {
	URL string `json:"url"`
}
