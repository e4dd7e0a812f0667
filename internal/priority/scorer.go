// Package priority implements the deterministic priority-scoring and
// action-derivation engine. Scoring fuses the user's heuristic preference
// lists with the classifier's structured analysis into a single bounded
// score per email, and derives one definitive next action from it.
package priority

import (
	"inboxzero/internal/models"
	"inboxzero/internal/utils"
)

// Score boundaries and adjustment weights. The base score sits mid-scale so
// negative signals have room to push an email down without flooring it.
const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	highTierThreshold   = 70
	mediumTierThreshold = 40

	// skillPrefixLen is the prefix-fallback width for skill matching.
	// Tunable: short prefixes admit false positives on short tokens.
	skillPrefixLen = 4

	// fuzzyWordMinLen is the minimum word length counted by fuzzy role
	// matching; shorter words ("of", "and", "the") carry no signal.
	fuzzyWordMinLen = 3

	maxSkillCredits   = 2
	maxKeywordCredits = 2
)

// intentBonus maps canonical intents to their score adjustment.
var intentBonus = map[models.Intent]int{
	models.IntentScheduleCall:        20,
	models.IntentDeadline:            25,
	models.IntentSendResume:          18,
	models.IntentTechnicalAssessment: 22,
	models.IntentMultiStepProcess:    15,
	models.IntentLinkedInFollowup:    10,
	models.IntentOther:               -10,
}

// Score computes the priority score for an email in [0,100]. Adjustments are
// additive and independent; categories marked "first match only" stop
// scanning their own list after one hit but never short-circuit the others.
// All text matching runs case-insensitively over sender + subject + body.
func Score(email models.Email, analysis *models.Analysis, prefs models.UserPreferences) int {
	score := baseScore
	haystack := utils.Fold(email.From + " " + email.Subject + " " + email.Body)

	score += companySignal(haystack, analysis, prefs)

	// Desired roles carry the strongest role signal, past roles a weaker
	// independent one. Both accept exact substrings or a fuzzy all-words
	// match to tolerate phrasing variants.
	if matchAnyRole(haystack, prefs.DesiredRoles) {
		score += 25
	}
	if matchAnyRole(haystack, prefs.PastRoles) {
		score += 18
	}
	if utils.FirstMatchFold(haystack, prefs.HighPriorityRoles) {
		score += 20
	}
	if utils.FirstMatchFold(haystack, prefs.MediumPriorityRoles) {
		score += 10
	}

	score += 15 * countSkillHits(haystack, prefs.Skills, maxSkillCredits)
	score += 15 * countKeywordHits(haystack, prefs.HighPriorityKeywords, maxKeywordCredits)

	if utils.FirstMatchFold(haystack, prefs.LowPriorityKeywords) {
		score -= 25
	}

	if analysis != nil {
		score += intentBonus[analysis.Intent.Canonical()]
		if len(analysis.Constraints.Deadlines) > 0 {
			score += 20
		}
	}

	if utils.FirstMatchFold(haystack, prefs.UrgentIndicators) {
		score += 15
	}
	if email.IsLinkedInNotification {
		score += 5
	}

	return clamp(score)
}

// ScoreToPriority converts a numeric score into its coarse tier. The mapping
// is the sole priority surfaced downstream.
func ScoreToPriority(score int) models.Priority {
	switch {
	case score >= highTierThreshold:
		return models.PriorityHigh
	case score >= mediumTierThreshold:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// companySignal scores the company match. The classifier's category wins
// when present; otherwise the legacy literal name lists are scanned in
// high, medium, low order and only the first list with a hit counts.
func companySignal(haystack string, analysis *models.Analysis, prefs models.UserPreferences) int {
	category := models.CompanyCategoryUnknown
	if analysis != nil {
		category = analysis.CompanyCategory
	}

	switch category {
	case models.CompanyCategoryHigh:
		return 30
	case models.CompanyCategoryMedium:
		return 15
	case models.CompanyCategoryLow:
		return -20
	}

	// Unknown or absent: fall back to literal matching
	if utils.FirstMatchFold(haystack, prefs.HighPriorityCompanies) {
		return 30
	}
	if utils.FirstMatchFold(haystack, prefs.MediumPriorityCompanies) {
		return 15
	}
	if utils.FirstMatchFold(haystack, prefs.LowPriorityCompanies) {
		return -20
	}
	return 0
}

// matchAnyRole reports whether any role matches exactly or fuzzily; the scan
// stops at the first hit.
func matchAnyRole(haystack string, roles []string) bool {
	for _, role := range roles {
		if utils.ContainsFold(haystack, role) {
			return true
		}
		if utils.ContainsAllWords(haystack, role, fuzzyWordMinLen) {
			return true
		}
	}
	return false
}

// countSkillHits counts distinct skill matches up to max. A skill matches on
// its punctuation-stripped form or, failing that, on a short prefix to
// tolerate suffix variants ("React" vs "ReactJS").
func countSkillHits(haystack string, skills []string, max int) int {
	normalized := utils.StripPunct(haystack)
	hits := 0
	for _, skill := range skills {
		stripped := utils.StripPunct(skill)
		if stripped == "" {
			continue
		}
		if utils.ContainsFold(normalized, stripped) ||
			utils.ContainsPrefixFold(normalized, stripped, skillPrefixLen) {
			hits++
			if hits == max {
				break
			}
		}
	}
	return hits
}

// countKeywordHits counts distinct keyword matches up to max.
func countKeywordHits(haystack string, keywords []string, max int) int {
	hits := 0
	for _, keyword := range keywords {
		if utils.ContainsFold(haystack, keyword) {
			hits++
			if hits == max {
				break
			}
		}
	}
	return hits
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
