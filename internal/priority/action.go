package priority

import (
	"fmt"
	"strings"

	"inboxzero/internal/models"
)

const subjectTruncateLen = 50

// SynthesizeAction derives the single definitive next action for an email as
// one imperative sentence. It dispatches on the canonical intent and never
// returns an empty string, whatever fields the analysis is missing.
func SynthesizeAction(email models.Email, analysis *models.Analysis, tier models.Priority, prefs models.UserPreferences) string {
	firstName := firstName(email.FromName)
	company := companyContext(analysis)

	if analysis == nil {
		return fmt.Sprintf("Review email from %s", firstName)
	}

	switch analysis.Intent.Canonical() {
	case models.IntentScheduleCall:
		if len(analysis.Constraints.Dates) > 0 {
			return fmt.Sprintf("Schedule call with %s%s for %s", firstName, company, analysis.Constraints.Dates[0])
		}
		if analysis.Constraints.TimeConstraints != "" {
			return fmt.Sprintf("Schedule call with %s%s for %s", firstName, company, analysis.Constraints.TimeConstraints)
		}
		return fmt.Sprintf("Respond to %s%s with your availability", firstName, company)

	case models.IntentSendResume:
		action := fmt.Sprintf("Send resume to %s%s", firstName, company)
		if deadline := firstDeadline(analysis); deadline != "" {
			action += " by " + deadline
		}
		return action

	case models.IntentTechnicalAssessment:
		action := fmt.Sprintf("Complete technical assessment from %s%s", firstName, company)
		if deadline := firstDeadline(analysis); deadline != "" {
			action += " by " + deadline
		}
		return action

	case models.IntentDeadline:
		if deadline := firstDeadline(analysis); deadline != "" {
			item := "see email"
			if items := analysis.Items(); len(items) > 0 {
				item = items[0]
			}
			return fmt.Sprintf("Complete by %s: %s", deadline, item)
		}
		return fmt.Sprintf("Complete deadline task from %s%s", firstName, company)

	case models.IntentMultiStepProcess:
		if items := analysis.Items(); len(items) > 0 {
			return fmt.Sprintf("Start step 1: %s", items[0])
		}
		return fmt.Sprintf("Begin multi-step process with %s%s", firstName, company)

	case models.IntentLinkedInFollowup:
		return fmt.Sprintf("Follow up with %s%s on LinkedIn", firstName, company)
	}

	// No recognized intent: fall back on the computed tier.
	switch tier {
	case models.PriorityHigh:
		if analysis.CompanyCategory == models.CompanyCategoryHigh {
			return fmt.Sprintf("High priority match: respond to %s%s - %s", firstName, company, truncate(email.Subject, subjectTruncateLen))
		}
		return fmt.Sprintf("Respond to %s%s - %s", firstName, company, truncate(email.Subject, subjectTruncateLen))
	case models.PriorityMedium:
		return fmt.Sprintf("Review email from %s%s", firstName, company)
	default:
		return fmt.Sprintf("Review email from %s", firstName)
	}
}

// firstName returns the first whitespace-delimited token of a display name.
func firstName(displayName string) string {
	fields := strings.Fields(displayName)
	if len(fields) == 0 {
		return displayName
	}
	return fields[0]
}

// companyContext renders " at {company}" when the analysis carries a company
// name, else the empty string.
func companyContext(analysis *models.Analysis) string {
	if analysis == nil || analysis.CompanyName == "" {
		return ""
	}
	return " at " + analysis.CompanyName
}

func firstDeadline(analysis *models.Analysis) string {
	if analysis == nil || len(analysis.Constraints.Deadlines) == 0 {
		return ""
	}
	return analysis.Constraints.Deadlines[0]
}

// truncate cuts s to max runes, never splitting a multi-byte sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
