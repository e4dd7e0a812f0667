package priority

import (
	"strings"
	"testing"
	"unicode/utf8"

	"inboxzero/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeAction(t *testing.T) {
	email := models.Email{
		FromName: "Sarah Chen",
		From:     "sarah@acme.com",
		Subject:  "Next steps",
	}

	tests := []struct {
		name     string
		email    models.Email
		analysis *models.Analysis
		tier     models.Priority
		want     string
	}{
		{
			name:     "nil analysis reviews email",
			email:    email,
			analysis: nil,
			tier:     models.PriorityLow,
			want:     "Review email from Sarah",
		},
		{
			name:  "schedule with proposed date",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentScheduleCall,
				CompanyName: "Acme",
				Constraints: models.Constraints{Dates: []string{"2026-09-03"}},
			},
			tier: models.PriorityHigh,
			want: "Schedule call with Sarah at Acme for 2026-09-03",
		},
		{
			name:  "schedule with time constraints only",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentScheduleCall,
				Constraints: models.Constraints{TimeConstraints: "next week"},
			},
			tier: models.PriorityHigh,
			want: "Schedule call with Sarah for next week",
		},
		{
			name:     "schedule without any time hints",
			email:    email,
			analysis: &models.Analysis{Intent: models.IntentScheduleCall},
			tier:     models.PriorityHigh,
			want:     "Respond to Sarah with your availability",
		},
		{
			name:  "send resume with deadline",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentSendResume,
				CompanyName: "Acme",
				Constraints: models.Constraints{Deadlines: []string{"Friday"}},
			},
			tier: models.PriorityHigh,
			want: "Send resume to Sarah at Acme by Friday",
		},
		{
			name:  "technical assessment with deadline",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentTechnicalAssessment,
				Constraints: models.Constraints{Deadlines: []string{"2026-09-10"}},
			},
			tier: models.PriorityHigh,
			want: "Complete technical assessment from Sarah by 2026-09-10",
		},
		{
			name:  "deadline intent uses first action item",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentDeadline,
				ActionItems: []string{"Submit take-home", "Confirm receipt"},
				Constraints: models.Constraints{Deadlines: []string{"Monday"}},
			},
			tier: models.PriorityHigh,
			want: "Complete by Monday: Submit take-home",
		},
		{
			name:  "deadline intent without action items",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentDeadline,
				Constraints: models.Constraints{Deadlines: []string{"Monday"}},
			},
			tier: models.PriorityHigh,
			want: "Complete by Monday: see email",
		},
		{
			name:  "multi step starts first step",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentMultiStepProcess,
				ActionItems: []string{"Complete HR screen", "Book onsite"},
			},
			tier: models.PriorityMedium,
			want: "Start step 1: Complete HR screen",
		},
		{
			name:  "legacy multi-step alias dispatches",
			email: email,
			analysis: &models.Analysis{
				Intent:      "multi-step",
				ActionItems: []string{"Complete HR screen"},
			},
			tier: models.PriorityMedium,
			want: "Start step 1: Complete HR screen",
		},
		{
			name:  "linkedin followup",
			email: email,
			analysis: &models.Analysis{
				Intent:      models.IntentLinkedInFollowup,
				CompanyName: "Acme",
			},
			tier: models.PriorityMedium,
			want: "Follow up with Sarah at Acme on LinkedIn",
		},
		{
			name:  "other intent high tier with category match",
			email: email,
			analysis: &models.Analysis{
				Intent:          models.IntentOther,
				CompanyCategory: models.CompanyCategoryHigh,
			},
			tier: models.PriorityHigh,
			want: "High priority match: respond to Sarah - Next steps",
		},
		{
			name:     "other intent medium tier",
			email:    email,
			analysis: &models.Analysis{Intent: models.IntentOther},
			tier:     models.PriorityMedium,
			want:     "Review email from Sarah",
		},
		{
			name:     "other intent low tier",
			email:    email,
			analysis: &models.Analysis{Intent: models.IntentOther},
			tier:     models.PriorityLow,
			want:     "Review email from Sarah",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeAction(tt.email, tt.analysis, tt.tier, models.UserPreferences{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynthesizeAction_TruncatesLongSubjects(t *testing.T) {
	email := models.Email{
		FromName: "Sarah Chen",
		Subject:  strings.Repeat("x", 80),
	}
	analysis := &models.Analysis{Intent: models.IntentOther}

	got := SynthesizeAction(email, analysis, models.PriorityHigh, models.UserPreferences{})
	assert.Equal(t, "Respond to Sarah - "+strings.Repeat("x", 50), got)
}

func TestSynthesizeAction_TruncatesOnRuneBoundaries(t *testing.T) {
	email := models.Email{
		FromName: "Sarah Chen",
		Subject:  strings.Repeat("日", 80),
	}
	analysis := &models.Analysis{Intent: models.IntentOther}

	got := SynthesizeAction(email, analysis, models.PriorityHigh, models.UserPreferences{})
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Respond to Sarah - "+strings.Repeat("日", 50), got)
}

func TestSynthesizeAction_NeverEmpty(t *testing.T) {
	got := SynthesizeAction(models.Email{}, nil, models.PriorityLow, models.UserPreferences{})
	assert.NotEmpty(t, strings.TrimSpace(got))
}
