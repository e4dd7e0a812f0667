package suggest

import (
	"fmt"
	"testing"
	"time"

	"inboxzero/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func scheduleEmail() models.Email {
	return models.Email{
		ID:       "msg-1",
		FromName: "Sarah Chen",
		From:     "sarah@acme.com",
		Subject:  "Quick call?",
	}
}

func TestGenerate_NilAnalysis(t *testing.T) {
	got := generateAt(scheduleEmail(), nil, nil, testNow)
	assert.Nil(t, got)
}

func TestGenerate_ScheduleWithSlots(t *testing.T) {
	analysis := &models.Analysis{
		Intent:   models.IntentScheduleCall,
		Priority: models.PriorityHigh,
	}
	availabilities := []models.CalendarAvailability{
		{
			Date: "2026-09-03",
			AvailableSlots: []models.TimeSlot{
				{Start: "2026-09-03T15:00:00Z", End: "2026-09-03T15:30:00Z"},
			},
		},
		{
			Date: "2026-09-04",
			AvailableSlots: []models.TimeSlot{
				{Start: "2026-09-04T10:00:00Z", End: "2026-09-04T11:00:00Z"},
			},
		},
	}

	got := generateAt(scheduleEmail(), analysis, availabilities, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "sched-msg-1", s.ID)
	assert.Equal(t, models.SuggestionSchedule, s.Type)
	assert.Equal(t, "Schedule call with Sarah", s.Title)
	assert.Equal(t, "2026-09-03T15:00:00Z", s.SuggestedTime)
	assert.Equal(t, []string{"Thursday 3:00PM-3:30PM", "Friday 10:00AM-11:00AM"}, s.TimeSlots)
	assert.Contains(t, s.GeneratedResponse, "I'm available Thursday 3:00PM-3:30PM or Friday 10:00AM-11:00AM")
	assert.Equal(t, models.PriorityHigh, s.Priority)
}

func TestGenerate_ScheduleWithoutSlotsFallsBackToConstraints(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentScheduleCall,
		Priority:    models.PriorityMedium,
		Constraints: models.Constraints{TimeConstraints: "sometime next week"},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "sched-msg-1", s.ID)
	assert.Equal(t, "Respond to Sarah with your availability", s.Title)
	assert.Empty(t, s.TimeSlots)
	assert.Empty(t, s.SuggestedTime)
	assert.Contains(t, s.GeneratedResponse, "sometime next week")
}

func TestGenerate_ScheduleWithNothingToOffer(t *testing.T) {
	analysis := &models.Analysis{
		Intent:   models.IntentScheduleCall,
		Priority: models.PriorityMedium,
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	assert.Empty(t, got)
}

func TestGenerate_Resume(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentSendResume,
		Priority:    models.PriorityHigh,
		CompanyName: "Acme",
		Constraints: models.Constraints{Deadlines: []string{"Friday"}},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "resume-msg-1", s.ID)
	assert.Equal(t, models.SuggestionFollowup, s.Type)
	assert.Equal(t, "Send resume to Sarah", s.Title)
	assert.Equal(t, "Send your resume to Acme by Friday", s.Description)
	assert.Equal(t, []string{"resume.pdf"}, s.AttachmentsNeeded)
	assert.Contains(t, s.GeneratedResponse, "Acme")
	assert.Contains(t, s.GeneratedResponse, "by Friday")
}

func TestGenerate_Assessment(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentTechnicalAssessment,
		Priority:    models.PriorityHigh,
		Constraints: models.Constraints{Deadlines: []string{"2026-09-10"}},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "assessment-msg-1", s.ID)
	assert.Equal(t, models.SuggestionDeadline, s.Type)
	require.NotNil(t, s.Deadline)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), s.Deadline.UTC())
	assert.Equal(t, "Technical assessment due Thursday, September 10, 2026", s.Description)
}

func TestGenerate_DeadlinePerExtractedDeadline(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentDeadline,
		Priority:    models.PriorityHigh,
		ActionItems: []string{"Submit take-home"},
		Constraints: models.Constraints{Deadlines: []string{"2026-09-05", "totally vague"}},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 2)

	parsed := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fmt.Sprintf("deadline-msg-1-0-%d", parsed.Unix()), got[0].ID)
	assert.Equal(t, "Deadline: Submit take-home", got[0].Title)
	require.NotNil(t, got[0].Deadline)
	assert.Equal(t, parsed, got[0].Deadline.UTC())

	// Unparseable deadline defaults to a week out, keeping the id stable for
	// a fixed clock.
	fallback := testNow.Add(7 * 24 * time.Hour)
	assert.Equal(t, fmt.Sprintf("deadline-msg-1-1-%d", fallback.Unix()), got[1].ID)
	require.NotNil(t, got[1].Deadline)
	assert.Equal(t, fallback, got[1].Deadline.UTC())
}

func TestGenerate_DeadlinesSharingAnInstantKeepDistinctIDs(t *testing.T) {
	// Two unparseable strings both land on the week-out default; the list
	// index keeps one from shadowing the other on upsert.
	analysis := &models.Analysis{
		Intent:      models.IntentDeadline,
		Priority:    models.PriorityMedium,
		Constraints: models.Constraints{Deadlines: []string{"soon-ish", "whenever"}},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)

	fallback := testNow.Add(7 * 24 * time.Hour)
	assert.Equal(t, fmt.Sprintf("deadline-msg-1-0-%d", fallback.Unix()), got[0].ID)
	assert.Equal(t, fmt.Sprintf("deadline-msg-1-1-%d", fallback.Unix()), got[1].ID)
}

func TestGenerate_MultiStep(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentMultiStepProcess,
		Priority:    models.PriorityMedium,
		ActionItems: []string{"Complete HR screen", "Book onsite", "Send references"},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 3)

	assert.Equal(t, "multistep-msg-1-0", got[0].ID)
	assert.Equal(t, "Step 1: Complete HR screen", got[0].Title)
	assert.Equal(t, models.PriorityHigh, got[0].Priority)
	assert.NotEmpty(t, got[0].GeneratedResponse)

	assert.Equal(t, "multistep-msg-1-1", got[1].ID)
	assert.Equal(t, "Step 2: Book onsite", got[1].Title)
	assert.Equal(t, models.PriorityMedium, got[1].Priority)
	assert.Empty(t, got[1].GeneratedResponse)

	assert.Equal(t, "multistep-msg-1-2", got[2].ID)
	assert.Equal(t, models.PriorityMedium, got[2].Priority)
	assert.Empty(t, got[2].GeneratedResponse)
}

func TestGenerate_LinkedInByIntent(t *testing.T) {
	analysis := &models.Analysis{
		Intent:             models.IntentLinkedInFollowup,
		Priority:           models.PriorityMedium,
		LinkedInProfileURL: "https://www.linkedin.com/in/sarah-chen",
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "linkedin-msg-1", s.ID)
	assert.Equal(t, models.SuggestionLinkedInFollowup, s.Type)
	assert.Equal(t, "https://www.linkedin.com/messaging/compose/?recipient=sarah-chen", s.LinkedInProfileURL)
}

func TestGenerate_LinkedInByPlatform(t *testing.T) {
	email := scheduleEmail()
	email.LinkedInProfileURL = "https://linkedin.com/in/sarah-chen/"

	analysis := &models.Analysis{
		Intent:   models.IntentOther,
		Platform: models.PlatformLinkedIn,
		Priority: models.PriorityLow,
	}

	got := generateAt(email, analysis, nil, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, models.SuggestionLinkedInFollowup, got[0].Type)
	assert.Equal(t, "https://www.linkedin.com/messaging/compose/?recipient=sarah-chen", got[0].LinkedInProfileURL)
}

func TestGenerate_LinkedInKeepsPlainURLWithoutProfileSegment(t *testing.T) {
	analysis := &models.Analysis{
		Intent:             models.IntentLinkedInFollowup,
		Priority:           models.PriorityMedium,
		LinkedInProfileURL: "https://www.linkedin.com/feed/update/12345",
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.linkedin.com/feed/update/12345", got[0].LinkedInProfileURL)
}

func TestGenerate_FallbackFollowup(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentOther,
		Priority:    models.PriorityLow,
		ActionItems: []string{"Reply to intro", "Share portfolio"},
	}

	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "followup-msg-1", s.ID)
	assert.Equal(t, models.SuggestionFollowup, s.Type)
	assert.Equal(t, "Follow up with Sarah", s.Title)
	assert.Equal(t, "Reply to intro. Share portfolio", s.Description)
	assert.Contains(t, s.GeneratedResponse, "Reply to intro")
}

func TestGenerate_OtherWithNoItemsYieldsNothing(t *testing.T) {
	analysis := &models.Analysis{Intent: models.IntentOther, Priority: models.PriorityLow}
	got := generateAt(scheduleEmail(), analysis, nil, testNow)
	assert.Empty(t, got)
}

func TestGenerate_Idempotent(t *testing.T) {
	analysis := &models.Analysis{
		Intent:      models.IntentDeadline,
		Priority:    models.PriorityHigh,
		ActionItems: []string{"Submit take-home"},
		Constraints: models.Constraints{Deadlines: []string{"next friday"}},
	}

	first := generateAt(scheduleEmail(), analysis, nil, testNow)
	second := generateAt(scheduleEmail(), analysis, nil, testNow)
	assert.Equal(t, first, second)
}
