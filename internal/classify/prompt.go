package classify

import (
	"fmt"
	"strings"

	"inboxzero/internal/models"
)

// bodyPreviewLimit bounds how much of the body goes into the prompt to keep
// token usage predictable while preserving context.
const bodyPreviewLimit = 2000

// buildPrompt assembles the classification prompt for one email, folding the
// user's profile in so the model can judge relevance and company category.
func buildPrompt(email models.Email, prefs models.UserPreferences) string {
	body := email.Body
	truncated := ""
	if len(body) > bodyPreviewLimit {
		body = body[:bodyPreviewLimit]
		truncated = "\n[...truncated...]"
	}

	linkedIn := "No"
	if email.IsLinkedInNotification {
		linkedIn = "Yes"
	}
	profileURL := email.LinkedInProfileURL
	if profileURL == "" {
		profileURL = "Not found"
	}

	var b strings.Builder
	b.WriteString("You are an AI assistant that analyzes job search emails and extracts structured information.\n\n")
	b.WriteString("Email to analyze:\n")
	fmt.Fprintf(&b, "From: %s <%s>\n", email.FromName, email.From)
	fmt.Fprintf(&b, "Subject: %s\n", email.Subject)
	fmt.Fprintf(&b, "Body: %s%s\n", body, truncated)
	fmt.Fprintf(&b, "LinkedIn Notification: %s\n", linkedIn)
	fmt.Fprintf(&b, "LinkedIn Profile URL: %s\n", profileURL)
	b.WriteString(profileContext(prefs))

	b.WriteString(`
Your task is to extract:
1. Intent: one of schedule_call, send_resume, deadline, technical_assessment, multi_step_process, linkedin_followup, other
2. Specific constraints: dates, times, deadlines, duration, time constraints (e.g. "Friday afternoon", "next week")
3. Required actions: what the user needs to do
4. Sender information: name, company, LinkedIn profile URL if present
5. Company name and category (high/medium/low/unknown based on the user profile above)

Extract dates in ISO format (YYYY-MM-DD) when possible; resolve relative dates like "next Friday" to actual dates.
Extract times in 24-hour format.

Return ONLY valid JSON in this exact format:
{
  "intent": "schedule_call" | "send_resume" | "deadline" | "technical_assessment" | "multi_step_process" | "linkedin_followup" | "other",
  "constraints": {
    "dates": ["YYYY-MM-DD"],
    "times": ["HH:MM"],
    "deadlines": ["YYYY-MM-DD" or "YYYY-MM-DDTHH:MM:SS"],
    "duration": "30min",
    "timeConstraints": "Friday afternoon",
    "specificConstraints": ["only free Friday afternoon"],
    "requirements": ["send resume"]
  },
  "requiredActions": ["action1"],
  "actionItems": ["item1"],
  "senderInfo": {"name": "Sender Name", "company": "Company or null", "linkedInProfileUrl": "https://linkedin.com/in/... or null", "email": "sender@example.com"},
  "platform": "email" | "linkedin",
  "priority": "high" | "medium" | "low",
  "companyCategory": "high" | "medium" | "low" | "unknown",
  "companyName": "extracted company name or empty string",
  "linkedInProfileUrl": "",
  "constraintsText": "Human-readable summary of all constraints"
}`)

	return b.String()
}

// profileContext renders the user profile section of the prompt. Empty
// preference fields are omitted entirely.
func profileContext(prefs models.UserPreferences) string {
	var parts []string
	add := func(label string, values []string) {
		if len(values) > 0 {
			parts = append(parts, label+": "+strings.Join(values, ", "))
		}
	}

	add("Skills", prefs.Skills)
	add("Past roles", prefs.PastRoles)
	add("Seeking roles", prefs.DesiredRoles)
	add("High priority roles", prefs.HighPriorityRoles)

	if len(prefs.HighPriorityKeywords) > 0 {
		keywords := prefs.HighPriorityKeywords
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		parts = append(parts, "High priority keywords: "+strings.Join(keywords, ", "))
	}
	if prefs.HighPriorityCompanyTypes != "" {
		parts = append(parts, "High priority companies: "+prefs.HighPriorityCompanyTypes)
	}
	if prefs.MediumPriorityCompanyTypes != "" {
		parts = append(parts, "Medium priority companies: "+prefs.MediumPriorityCompanyTypes)
	}
	if prefs.LowPriorityCompanyTypes != "" {
		parts = append(parts, "Low priority companies: "+prefs.LowPriorityCompanyTypes)
	}

	if len(parts) == 0 {
		return ""
	}
	return "\nUser Profile:\n" + strings.Join(parts, "\n") + "\n"
}
