package models

// Intent classifies the job-search purpose of an email. The underscored
// values are canonical; the hyphenated ones are legacy tags still emitted by
// older classifier prompts and stored rows, and must be normalized before
// dispatch.
type Intent string

const (
	IntentScheduleCall        Intent = "schedule_call"
	IntentSendResume          Intent = "send_resume"
	IntentDeadline            Intent = "deadline"
	IntentTechnicalAssessment Intent = "technical_assessment"
	IntentMultiStepProcess    Intent = "multi_step_process"
	IntentLinkedInFollowup    Intent = "linkedin_followup"
	IntentOther               Intent = "other"
)

// intentAliases maps legacy intent tags to their canonical form.
var intentAliases = map[Intent]Intent{
	"schedule":          IntentScheduleCall,
	"multi-step":        IntentMultiStepProcess,
	"linkedin-followup": IntentLinkedInFollowup,
}

// Canonical returns the canonical form of an intent, mapping legacy aliases.
// Unknown tags normalize to IntentOther so downstream dispatch stays total.
func (i Intent) Canonical() Intent {
	if canonical, ok := intentAliases[i]; ok {
		return canonical
	}
	switch i {
	case IntentScheduleCall, IntentSendResume, IntentDeadline,
		IntentTechnicalAssessment, IntentMultiStepProcess,
		IntentLinkedInFollowup, IntentOther:
		return i
	}
	return IntentOther
}

// Priority is the coarse urgency bucket attached to analyses and suggestions.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CompanyCategory is the classifier's judgment of how well the sender's
// company matches the user's declared company-type preferences.
type CompanyCategory string

const (
	CompanyCategoryHigh    CompanyCategory = "high"
	CompanyCategoryMedium  CompanyCategory = "medium"
	CompanyCategoryLow     CompanyCategory = "low"
	CompanyCategoryUnknown CompanyCategory = "unknown"
)

// Platform identifies where a message originated.
type Platform string

const (
	PlatformEmail    Platform = "email"
	PlatformLinkedIn Platform = "linkedin"
)

// Constraints holds every date/time/deadline/requirement phrase the
// classifier extracted from an email. All fields are optional.
type Constraints struct {
	Dates               []string `json:"dates,omitempty"`
	Times               []string `json:"times,omitempty"`
	Deadlines           []string `json:"deadlines,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	TimeConstraints     string   `json:"timeConstraints,omitempty"`
	SpecificConstraints []string `json:"specificConstraints,omitempty"`
}

// SenderInfo is the classifier's structured view of the sender.
type SenderInfo struct {
	Name               string `json:"name"`
	Company            string `json:"company,omitempty"`
	LinkedInProfileURL string `json:"linkedInProfileUrl,omitempty"`
	Email              string `json:"email"`
}

// Analysis is the structured output of the email classifier. The Priority
// field is advisory only: the priority scorer overwrites it with the value
// derived from its own score.
type Analysis struct {
	Intent             Intent          `json:"intent"`
	Constraints        Constraints     `json:"constraints"`
	ActionItems        []string        `json:"actionItems"`
	RequiredActions    []string        `json:"requiredActions,omitempty"`
	SenderInfo         *SenderInfo     `json:"senderInfo,omitempty"`
	Platform           Platform        `json:"platform"`
	Priority           Priority        `json:"priority"`
	CompanyCategory    CompanyCategory `json:"companyCategory,omitempty"`
	CompanyName        string          `json:"companyName,omitempty"`
	LinkedInProfileURL string          `json:"linkedInProfileUrl,omitempty"`
	ConstraintsText    string          `json:"constraintsText,omitempty"`
}

// Normalize canonicalizes the intent tag and merges the overlapping
// RequiredActions/ActionItems fields, with required actions taking
// precedence. It is applied once at the classification boundary so the
// scoring and suggestion code only ever sees canonical shapes.
func (a *Analysis) Normalize() {
	a.Intent = a.Intent.Canonical()

	merged := make([]string, 0, len(a.RequiredActions)+len(a.ActionItems))
	seen := make(map[string]struct{})
	for _, item := range append(append([]string{}, a.RequiredActions...), a.ActionItems...) {
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		merged = append(merged, item)
	}
	a.ActionItems = merged
	a.RequiredActions = nil

	if a.Platform == "" {
		a.Platform = PlatformEmail
	}
	if a.CompanyCategory == "" {
		a.CompanyCategory = CompanyCategoryUnknown
	}
}

// Items returns the merged action-item list. Safe on a nil analysis.
func (a *Analysis) Items() []string {
	if a == nil {
		return nil
	}
	return a.ActionItems
}
