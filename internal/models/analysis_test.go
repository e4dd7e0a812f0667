package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentCanonical(t *testing.T) {
	tests := []struct {
		in   Intent
		want Intent
	}{
		{IntentScheduleCall, IntentScheduleCall},
		{IntentSendResume, IntentSendResume},
		{IntentDeadline, IntentDeadline},
		{IntentTechnicalAssessment, IntentTechnicalAssessment},
		{IntentMultiStepProcess, IntentMultiStepProcess},
		{IntentLinkedInFollowup, IntentLinkedInFollowup},
		{IntentOther, IntentOther},
		{"schedule", IntentScheduleCall},
		{"multi-step", IntentMultiStepProcess},
		{"linkedin-followup", IntentLinkedInFollowup},
		{"", IntentOther},
		{"spam", IntentOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Canonical(), "intent %q", tt.in)
	}
}

func TestAnalysisNormalize(t *testing.T) {
	a := &Analysis{
		Intent:          "schedule",
		RequiredActions: []string{"Confirm a time", "Prepare questions"},
		ActionItems:     []string{"Prepare questions", "", "Share availability"},
	}
	a.Normalize()

	assert.Equal(t, IntentScheduleCall, a.Intent)
	// Required actions first, duplicates and empties dropped.
	assert.Equal(t, []string{"Confirm a time", "Prepare questions", "Share availability"}, a.ActionItems)
	assert.Nil(t, a.RequiredActions)
	assert.Equal(t, PlatformEmail, a.Platform)
	assert.Equal(t, CompanyCategoryUnknown, a.CompanyCategory)
}

func TestAnalysisNormalize_KeepsExplicitFields(t *testing.T) {
	a := &Analysis{
		Intent:          IntentLinkedInFollowup,
		Platform:        PlatformLinkedIn,
		CompanyCategory: CompanyCategoryHigh,
	}
	a.Normalize()

	assert.Equal(t, PlatformLinkedIn, a.Platform)
	assert.Equal(t, CompanyCategoryHigh, a.CompanyCategory)
}

func TestAnalysisItems_NilSafe(t *testing.T) {
	var a *Analysis
	assert.Nil(t, a.Items())

	a = &Analysis{ActionItems: []string{"one"}}
	assert.Equal(t, []string{"one"}, a.Items())
}
