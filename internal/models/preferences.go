package models

// UserPreferences is the user-supplied job-search profile consumed by the
// classifier prompt and the priority scorer. It is loaded once per batch and
// never mutated by the scoring code.
type UserPreferences struct {
	// User background
	Skills       []string `json:"skills"`
	PastRoles    []string `json:"pastRoles"`
	DesiredRoles []string `json:"desiredRoles"`

	// Free-text company-type descriptions fed to the classifier, e.g.
	// "AI companies, unicorns, modern startups".
	HighPriorityCompanyTypes   string `json:"highPriorityCompanyTypes"`
	MediumPriorityCompanyTypes string `json:"mediumPriorityCompanyTypes"`
	LowPriorityCompanyTypes    string `json:"lowPriorityCompanyTypes"`

	// Legacy literal company-name lists, kept as the scoring fallback when
	// the classifier could not categorize the company.
	HighPriorityCompanies   []string `json:"highPriorityCompanies"`
	MediumPriorityCompanies []string `json:"mediumPriorityCompanies"`
	LowPriorityCompanies    []string `json:"lowPriorityCompanies"`

	// Role priorities
	HighPriorityRoles   []string `json:"highPriorityRoles"`
	MediumPriorityRoles []string `json:"mediumPriorityRoles"`

	// Keywords that move the priority score up or down
	HighPriorityKeywords []string `json:"highPriorityKeywords"`
	LowPriorityKeywords  []string `json:"lowPriorityKeywords"`

	// Preferred response time in hours
	PreferredResponseTime int `json:"preferredResponseTime"`

	// Phrases that signal urgency
	UrgentIndicators []string `json:"urgentIndicators"`
}

// DefaultPreferences returns the documented default profile used when a user
// has not saved preferences yet.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Skills:                  []string{},
		PastRoles:               []string{},
		DesiredRoles:            []string{},
		HighPriorityCompanies:   []string{},
		MediumPriorityCompanies: []string{},
		LowPriorityCompanies:    []string{},
		HighPriorityRoles:       []string{},
		MediumPriorityRoles:     []string{},
		HighPriorityKeywords:    []string{"interview", "deadline", "urgent", "asap", "final round", "offer"},
		LowPriorityKeywords:     []string{"unsubscribe", "newsletter", "promotion", "marketing"},
		PreferredResponseTime:   24,
		UrgentIndicators:        []string{"deadline", "due", "by", "asap", "urgent", "immediately"},
	}
}
