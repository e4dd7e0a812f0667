// Package suggest turns a classified email plus calendar availability into
// typed, templated follow-up suggestions, each carrying a ready-to-send
// response draft. Generation is pure and idempotent: the same inputs always
// produce the same suggestion ids and content.
package suggest

import (
	"fmt"
	"strings"
	"time"

	"inboxzero/internal/models"
)

// placeholderResume is the default attachment name for resume requests until
// the user uploads a real file name in preferences.
const placeholderResume = "resume.pdf"

// Generate derives zero or more suggestions for one analyzed email. Rules
// are intent-gated and independent; an email with a dominant intent usually
// yields suggestions from a single rule, but nothing prevents several rules
// from firing. All optional analysis fields are tolerated as absent.
func Generate(email models.Email, analysis *models.Analysis, availabilities []models.CalendarAvailability) []models.Suggestion {
	return generateAt(email, analysis, availabilities, time.Now().UTC())
}

// generateAt is Generate with an injected clock for deterministic tests.
func generateAt(email models.Email, analysis *models.Analysis, availabilities []models.CalendarAvailability, now time.Time) []models.Suggestion {
	if analysis == nil {
		return nil
	}

	var suggestions []models.Suggestion
	intent := analysis.Intent.Canonical()
	firstName := firstNameOf(email.FromName)

	if intent == models.IntentScheduleCall {
		if s, ok := scheduleSuggestion(email, analysis, availabilities, firstName, now); ok {
			suggestions = append(suggestions, s)
		}
	}

	if intent == models.IntentSendResume {
		suggestions = append(suggestions, resumeSuggestion(email, analysis, firstName, now))
	}

	if intent == models.IntentTechnicalAssessment {
		suggestions = append(suggestions, assessmentSuggestion(email, analysis, firstName, now))
	}

	if intent == models.IntentDeadline {
		suggestions = append(suggestions, deadlineSuggestions(email, analysis, now)...)
	}

	if intent == models.IntentMultiStepProcess {
		suggestions = append(suggestions, multiStepSuggestions(email, analysis, firstName, now)...)
	}

	if intent == models.IntentLinkedInFollowup ||
		(analysis.Platform == models.PlatformLinkedIn && profileURL(email, analysis) != "") {
		suggestions = append(suggestions, linkedInSuggestion(email, analysis, firstName, now))
	}

	// Nothing matched but the classifier still extracted work to do: keep
	// the email actionable with a generic follow-up.
	if len(suggestions) == 0 && len(analysis.Items()) > 0 {
		suggestions = append(suggestions, fallbackSuggestion(email, analysis, firstName, now))
	}

	return suggestions
}

// scheduleSuggestion proposes concrete call times from free calendar slots,
// or falls back to the email's own time-constraint phrase when no slot
// qualified. Returns false when neither is available.
func scheduleSuggestion(email models.Email, analysis *models.Analysis, availabilities []models.CalendarAvailability, firstName string, now time.Time) (models.Suggestion, bool) {
	formatted, firstStart := collectSlots(availabilities)

	if len(formatted) == 0 {
		if analysis.Constraints.TimeConstraints == "" {
			return models.Suggestion{}, false
		}
		return models.Suggestion{
			ID:          "sched-" + email.ID,
			EmailID:     email.ID,
			Type:        models.SuggestionSchedule,
			Title:       fmt.Sprintf("Respond to %s with your availability", firstName),
			Description: fmt.Sprintf("They asked about %s. No matching free slot was found; reply with times that work.", analysis.Constraints.TimeConstraints),
			ActionItems: analysis.Items(),
			Priority:    analysis.Priority,
			GeneratedResponse: fmt.Sprintf(
				"Hi %s,\n\nThanks for reaching out! You mentioned %s - could you share a couple of concrete times? I'll confirm right away.\n\nBest regards",
				firstName, analysis.Constraints.TimeConstraints),
			CreatedAt: now,
		}, true
	}

	alternatives := formatted[0]
	if len(formatted) > 1 {
		alternatives = formatted[0] + " or " + formatted[1]
	}

	return models.Suggestion{
		ID:            "sched-" + email.ID,
		EmailID:       email.ID,
		Type:          models.SuggestionSchedule,
		Title:         fmt.Sprintf("Schedule call with %s", firstName),
		Description:   "Available slots: " + strings.Join(formatted, ", "),
		SuggestedTime: firstStart,
		ActionItems:   analysis.Items(),
		Priority:      analysis.Priority,
		TimeSlots:     formatted,
		GeneratedResponse: fmt.Sprintf(
			"Hi %s,\n\nThanks for reaching out! I'm available %s. Would that work for you?\n\nBest regards",
			firstName, alternatives),
		CreatedAt: now,
	}, true
}

func resumeSuggestion(email models.Email, analysis *models.Analysis, firstName string, now time.Time) models.Suggestion {
	description := "Send your resume"
	draft := fmt.Sprintf("Hi %s,\n\nThank you for your interest! Please find my resume attached.", firstName)

	if analysis.CompanyName != "" {
		description += " to " + analysis.CompanyName
		draft = fmt.Sprintf("Hi %s,\n\nThank you for your interest! I'd love to be considered for the role at %s. Please find my resume attached.", firstName, analysis.CompanyName)
	}
	if len(analysis.Constraints.Deadlines) > 0 {
		description += fmt.Sprintf(" by %s", analysis.Constraints.Deadlines[0])
		draft += fmt.Sprintf("\n\nI understand you need it by %s.", analysis.Constraints.Deadlines[0])
	}
	draft += "\n\nBest regards"

	return models.Suggestion{
		ID:                "resume-" + email.ID,
		EmailID:           email.ID,
		Type:              models.SuggestionFollowup,
		Title:             fmt.Sprintf("Send resume to %s", firstName),
		Description:       description,
		ActionItems:       analysis.Items(),
		Priority:          analysis.Priority,
		AttachmentsNeeded: []string{placeholderResume},
		GeneratedResponse: draft,
		CreatedAt:         now,
	}
}

func assessmentSuggestion(email models.Email, analysis *models.Analysis, firstName string, now time.Time) models.Suggestion {
	s := models.Suggestion{
		ID:          "assessment-" + email.ID,
		EmailID:     email.ID,
		Type:        models.SuggestionDeadline,
		Title:       fmt.Sprintf("Complete technical assessment from %s", firstName),
		Description: "Technical assessment requested",
		ActionItems: analysis.Items(),
		Priority:    analysis.Priority,
		GeneratedResponse: fmt.Sprintf(
			"Hi %s,\n\nThanks for sending the assessment over - I'll get started and submit it on time.\n\nBest regards",
			firstName),
		CreatedAt: now,
	}
	if len(analysis.Constraints.Deadlines) > 0 {
		deadline := parseDeadline(analysis.Constraints.Deadlines[0], now)
		s.Deadline = &deadline
		s.Description = fmt.Sprintf("Technical assessment due %s", deadline.Format("Monday, January 2, 2006"))
	}
	return s
}

// deadlineSuggestions emits one suggestion per extracted deadline. The id
// carries the list index and the parsed epoch: the index keeps two deadlines
// distinct even when both parse to the same instant (two unparseable strings
// share the week-out default), and regeneration keeps ids stable.
func deadlineSuggestions(email models.Email, analysis *models.Analysis, now time.Time) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(analysis.Constraints.Deadlines))
	title := "Complete task"
	if items := analysis.Items(); len(items) > 0 {
		title = items[0]
	}

	for i, raw := range analysis.Constraints.Deadlines {
		deadline := parseDeadline(raw, now)
		suggestions = append(suggestions, models.Suggestion{
			ID:          fmt.Sprintf("deadline-%s-%d-%d", email.ID, i, deadline.Unix()),
			EmailID:     email.ID,
			Type:        models.SuggestionDeadline,
			Title:       "Deadline: " + title,
			Description: "Due: " + deadline.Format("Monday, January 2, 2006"),
			Deadline:    &deadline,
			ActionItems: analysis.Items(),
			Priority:    analysis.Priority,
			CreatedAt:   now,
		})
	}
	return suggestions
}

// multiStepSuggestions emits one suggestion per action item, index-ordered.
// The first step is always high priority regardless of the computed tier,
// and only the first step carries a response draft.
func multiStepSuggestions(email models.Email, analysis *models.Analysis, firstName string, now time.Time) []models.Suggestion {
	items := analysis.Items()
	suggestions := make([]models.Suggestion, 0, len(items))

	for i, item := range items {
		s := models.Suggestion{
			ID:          fmt.Sprintf("multistep-%s-%d", email.ID, i),
			EmailID:     email.ID,
			Type:        models.SuggestionFollowup,
			Title:       fmt.Sprintf("Step %d: %s", i+1, item),
			Description: fmt.Sprintf("Part of multi-step process with %s", firstName),
			ActionItems: []string{item},
			Priority:    analysis.Priority,
			CreatedAt:   now,
		}
		if i == 0 {
			s.Priority = models.PriorityHigh
			s.GeneratedResponse = fmt.Sprintf(
				"Hi %s,\n\nThanks for outlining the process! I'll start with the first step: %s.\n\nBest regards",
				firstName, item)
		}
		suggestions = append(suggestions, s)
	}
	return suggestions
}

func linkedInSuggestion(email models.Email, analysis *models.Analysis, firstName string, now time.Time) models.Suggestion {
	url := profileURL(email, analysis)
	description := "Continue the conversation on LinkedIn"
	if items := analysis.Items(); len(items) > 0 {
		description += ". " + strings.Join(items, ", ")
	}

	s := models.Suggestion{
		ID:                 "linkedin-" + email.ID,
		EmailID:            email.ID,
		Type:               models.SuggestionLinkedInFollowup,
		Title:              fmt.Sprintf("Follow up with %s on LinkedIn", firstName),
		Description:        description,
		ActionItems:        analysis.Items(),
		Priority:           analysis.Priority,
		LinkedInProfileURL: url,
		GeneratedResponse: fmt.Sprintf(
			"Hi %s, thanks for connecting! I'd love to continue the conversation - happy to share more about my background whenever convenient.",
			firstName),
		CreatedAt: now,
	}
	if deepLink := messagingDeepLink(url); deepLink != "" {
		s.LinkedInProfileURL = deepLink
	}
	return s
}

func fallbackSuggestion(email models.Email, analysis *models.Analysis, firstName string, now time.Time) models.Suggestion {
	items := analysis.Items()
	return models.Suggestion{
		ID:          "followup-" + email.ID,
		EmailID:     email.ID,
		Type:        models.SuggestionFollowup,
		Title:       fmt.Sprintf("Follow up with %s", firstName),
		Description: strings.Join(items, ". "),
		ActionItems: items,
		Priority:    analysis.Priority,
		GeneratedResponse: fmt.Sprintf(
			"Hi %s,\n\nThanks for your email! Regarding \"%s\" - I'll follow up shortly with the details.\n\nBest regards",
			firstName, items[0]),
		CreatedAt: now,
	}
}

// profileURL prefers the classifier's extracted profile URL over the one
// scraped from the raw email.
func profileURL(email models.Email, analysis *models.Analysis) string {
	if analysis != nil && analysis.LinkedInProfileURL != "" {
		return analysis.LinkedInProfileURL
	}
	return email.LinkedInProfileURL
}

// messagingDeepLink derives a profile-specific messaging link from the
// trailing path segment of a linkedin.com/in/ URL. Unrecognized URLs yield
// an empty string and the caller keeps the plain profile URL.
func messagingDeepLink(url string) string {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.Index(trimmed, "/in/")
	if idx < 0 {
		return ""
	}
	segment := trimmed[idx+len("/in/"):]
	if segment == "" || strings.Contains(segment, "/") {
		return ""
	}
	return "https://www.linkedin.com/messaging/compose/?recipient=" + segment
}

func firstNameOf(displayName string) string {
	fields := strings.Fields(displayName)
	if len(fields) == 0 {
		return displayName
	}
	return fields[0]
}
