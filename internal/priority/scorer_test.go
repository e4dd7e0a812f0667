package priority

import (
	"testing"

	"inboxzero/internal/models"

	"github.com/stretchr/testify/assert"
)

func testEmail(from, subject, body string) models.Email {
	return models.Email{
		ID:      "msg-1",
		From:    from,
		Subject: subject,
		Body:    body,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		email    models.Email
		analysis *models.Analysis
		prefs    models.UserPreferences
		want     int
	}{
		{
			name:     "no signals scores base",
			email:    testEmail("alice@example.com", "Hello", "Just a note"),
			analysis: nil,
			prefs:    models.UserPreferences{},
			want:     50,
		},
		{
			name:     "schedule intent bonus",
			email:    testEmail("alice@example.com", "Call?", "Let's talk"),
			analysis: &models.Analysis{Intent: models.IntentScheduleCall},
			prefs:    models.UserPreferences{},
			want:     70,
		},
		{
			name:     "legacy schedule alias scores like canonical",
			email:    testEmail("alice@example.com", "Call?", "Let's talk"),
			analysis: &models.Analysis{Intent: "schedule"},
			prefs:    models.UserPreferences{},
			want:     70,
		},
		{
			name:     "unknown intent treated as other",
			email:    testEmail("alice@example.com", "Hi", "Hello there"),
			analysis: &models.Analysis{Intent: "spam"},
			prefs:    models.UserPreferences{},
			want:     40,
		},
		{
			name:     "company category high wins over legacy low list",
			email:    testEmail("recruiter@acme.com", "Role", "We have a role"),
			analysis: &models.Analysis{Intent: models.IntentScheduleCall, CompanyCategory: models.CompanyCategoryHigh},
			prefs: models.UserPreferences{
				LowPriorityCompanies: []string{"acme"},
			},
			want: 100,
		},
		{
			name:     "company category low penalty",
			email:    testEmail("alice@example.com", "Call?", "Let's talk"),
			analysis: &models.Analysis{Intent: models.IntentScheduleCall, CompanyCategory: models.CompanyCategoryLow},
			prefs:    models.UserPreferences{},
			want:     50,
		},
		{
			name:     "legacy company lists scanned high first",
			email:    testEmail("recruiter@acme.com", "Role", "We have a role"),
			analysis: nil,
			prefs: models.UserPreferences{
				HighPriorityCompanies:   []string{"acme"},
				MediumPriorityCompanies: []string{"acme"},
			},
			want: 80,
		},
		{
			name:     "desired role exact match",
			email:    testEmail("alice@example.com", "Backend Engineer opening", "Open position"),
			analysis: nil,
			prefs: models.UserPreferences{
				DesiredRoles: []string{"backend engineer"},
			},
			want: 75,
		},
		{
			name:     "desired role fuzzy word match",
			email:    testEmail("alice@example.com", "New opening", "Backend Engineer (Senior) position open"),
			analysis: nil,
			prefs: models.UserPreferences{
				DesiredRoles: []string{"Senior Backend Engineer"},
			},
			want: 75,
		},
		{
			name:     "desired and past roles stack",
			email:    testEmail("alice@example.com", "Roles", "backend engineer and platform engineer positions"),
			analysis: nil,
			prefs: models.UserPreferences{
				DesiredRoles: []string{"backend engineer"},
				PastRoles:    []string{"platform engineer"},
			},
			want: 93,
		},
		{
			name:     "skill credits capped at two",
			email:    testEmail("alice@example.com", "Stack", "Experience with ReactJS, Python and Kubernetes required"),
			analysis: nil,
			prefs: models.UserPreferences{
				Skills: []string{"React", "Python", "Kubernetes"},
			},
			want: 80,
		},
		{
			name:     "skill prefix fallback matches suffix variant",
			email:    testEmail("alice@example.com", "Stack", "ReactJS developer wanted"),
			analysis: nil,
			prefs: models.UserPreferences{
				Skills: []string{"React"},
			},
			want: 65,
		},
		{
			name:     "skill punctuation normalized",
			email:    testEmail("alice@example.com", "Stack", "We ship nodejs services"),
			analysis: nil,
			prefs: models.UserPreferences{
				Skills: []string{"Node.js"},
			},
			want: 65,
		},
		{
			name:     "high keyword credits capped at two",
			email:    testEmail("alice@example.com", "Next steps", "interview offer pending final round"),
			analysis: nil,
			prefs: models.UserPreferences{
				HighPriorityKeywords: []string{"interview", "offer", "final round"},
			},
			want: 80,
		},
		{
			name:     "low keyword penalty applied once",
			email:    testEmail("news@example.com", "Weekly newsletter", "Click unsubscribe to stop"),
			analysis: nil,
			prefs: models.UserPreferences{
				LowPriorityKeywords: []string{"newsletter", "unsubscribe"},
			},
			want: 25,
		},
		{
			name:     "urgent indicator bonus",
			email:    testEmail("alice@example.com", "Quick one", "Please reply ASAP"),
			analysis: nil,
			prefs: models.UserPreferences{
				UrgentIndicators: []string{"asap"},
			},
			want: 65,
		},
		{
			name: "linkedin notification bonus",
			email: models.Email{
				From:                   "notifications@linkedin.com",
				Subject:                "New message",
				Body:                   "You have a new message",
				IsLinkedInNotification: true,
			},
			analysis: nil,
			prefs:    models.UserPreferences{},
			want:     55,
		},
		{
			name:  "deadline intent with extracted deadline",
			email: testEmail("alice@example.com", "Take-home", "Submit your solution"),
			analysis: &models.Analysis{
				Intent:      models.IntentDeadline,
				Constraints: models.Constraints{Deadlines: []string{"2026-09-05"}},
			},
			prefs: models.UserPreferences{},
			want:  95,
		},
		{
			name:  "clamped at zero",
			email: testEmail("news@example.com", "Promotions", "unsubscribe"),
			analysis: &models.Analysis{
				Intent:          models.IntentOther,
				CompanyCategory: models.CompanyCategoryLow,
			},
			prefs: models.UserPreferences{
				LowPriorityKeywords: []string{"unsubscribe"},
			},
			want: 0,
		},
		{
			name:  "clamped at one hundred",
			email: testEmail("recruiter@bigco.com", "Final round", "interview offer, reply asap"),
			analysis: &models.Analysis{
				Intent:          models.IntentDeadline,
				CompanyCategory: models.CompanyCategoryHigh,
				Constraints:     models.Constraints{Deadlines: []string{"Friday"}},
			},
			prefs: models.UserPreferences{
				HighPriorityKeywords: []string{"interview", "offer"},
				UrgentIndicators:     []string{"asap"},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.email, tt.analysis, tt.prefs))
		})
	}
}

func TestScoreToPriority(t *testing.T) {
	tests := []struct {
		score int
		want  models.Priority
	}{
		{0, models.PriorityLow},
		{39, models.PriorityLow},
		{40, models.PriorityMedium},
		{69, models.PriorityMedium},
		{70, models.PriorityHigh},
		{100, models.PriorityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreToPriority(tt.score), "score %d", tt.score)
	}
}
