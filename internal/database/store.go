package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"inboxzero/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Store persists processed emails, their analyses and suggestions, plus user
// preferences. All writes are upserts keyed by deterministic ids, so
// reprocessing the same inbox is idempotent.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CreateTables applies the schema.
func (s *Store) CreateTables(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveEmail upserts one processed email together with its analysis, score
// and definitive action.
func (s *Store) SaveEmail(ctx context.Context, userID string, email models.Email, analysis *models.Analysis, score int, action string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO email_records (id, thread_id, user_id, subject, sender_name, sender_email, company_name, received_date, body, snippet, is_linkedin_notification, linkedin_profile_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (id) DO UPDATE SET
			subject = EXCLUDED.subject,
			company_name = EXCLUDED.company_name,
			body = EXCLUDED.body,
			snippet = EXCLUDED.snippet,
			updated_at = NOW()`,
		email.ID, email.ThreadID, userID, email.Subject, email.FromName, email.From,
		analysis.CompanyName, email.Date, email.Body, email.Snippet,
		email.IsLinkedInNotification, nullIfEmpty(email.LinkedInProfileURL))
	if err != nil {
		return fmt.Errorf("failed to save email record: %w", err)
	}

	constraintsJSON, err := json.Marshal(analysis.Constraints)
	if err != nil {
		return fmt.Errorf("failed to encode constraints: %w", err)
	}
	senderJSON, err := json.Marshal(analysis.SenderInfo)
	if err != nil {
		return fmt.Errorf("failed to encode sender info: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO email_constraints (email_id, intent, constraints_json, constraints_text, action_items, sender_info, priority, priority_score, company_category, definitive_action, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (email_id) DO UPDATE SET
			intent = EXCLUDED.intent,
			constraints_json = EXCLUDED.constraints_json,
			constraints_text = EXCLUDED.constraints_text,
			action_items = EXCLUDED.action_items,
			sender_info = EXCLUDED.sender_info,
			priority = EXCLUDED.priority,
			priority_score = EXCLUDED.priority_score,
			company_category = EXCLUDED.company_category,
			definitive_action = EXCLUDED.definitive_action,
			updated_at = NOW()`,
		email.ID, string(analysis.Intent), constraintsJSON, analysis.ConstraintsText,
		pq.Array(analysis.ActionItems), senderJSON, string(analysis.Priority), score,
		string(analysis.CompanyCategory), action)
	if err != nil {
		return fmt.Errorf("failed to save email constraints: %w", err)
	}

	return nil
}

// SaveSuggestions upserts the suggestion rows for one email and creates
// follow-up tracking entries for the ones carrying a deadline or a high
// priority. Status is never touched on update: completion and dismissal
// survive reprocessing.
func (s *Store) SaveSuggestions(ctx context.Context, emailID string, suggestions []models.Suggestion) error {
	for _, suggestion := range suggestions {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO email_suggestions (id, email_id, type, title, description, generated_response, time_slots, attachments_needed, suggested_time, deadline, action_items, priority, linkedin_profile_url, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				generated_response = EXCLUDED.generated_response,
				time_slots = EXCLUDED.time_slots,
				attachments_needed = EXCLUDED.attachments_needed,
				suggested_time = EXCLUDED.suggested_time,
				deadline = EXCLUDED.deadline,
				action_items = EXCLUDED.action_items,
				priority = EXCLUDED.priority,
				linkedin_profile_url = EXCLUDED.linkedin_profile_url,
				updated_at = NOW()`,
			suggestion.ID, emailID, string(suggestion.Type), suggestion.Title,
			suggestion.Description, nullIfEmpty(suggestion.GeneratedResponse),
			pq.Array(suggestion.TimeSlots), pq.Array(suggestion.AttachmentsNeeded),
			parseTimestamp(suggestion.SuggestedTime), suggestion.Deadline,
			pq.Array(suggestion.ActionItems), string(suggestion.Priority),
			nullIfEmpty(suggestion.LinkedInProfileURL))
		if err != nil {
			return fmt.Errorf("failed to save suggestion %s: %w", suggestion.ID, err)
		}

		if suggestion.Deadline == nil && suggestion.Priority != models.PriorityHigh {
			continue
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO follow_up_tracking (email_id, suggestion_id, deadline, priority, updated_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (email_id, suggestion_id) DO UPDATE SET
				deadline = EXCLUDED.deadline,
				priority = EXCLUDED.priority,
				updated_at = NOW()`,
			emailID, suggestion.ID, suggestion.Deadline, string(suggestion.Priority))
		if err != nil {
			return fmt.Errorf("failed to save follow-up tracking for %s: %w", suggestion.ID, err)
		}
	}
	return nil
}

// suggestionRow is the scan target for stored suggestion queries.
type suggestionRow struct {
	ID                 string         `db:"id"`
	EmailID            string         `db:"email_id"`
	Type               string         `db:"type"`
	Title              string         `db:"title"`
	Description        string         `db:"description"`
	GeneratedResponse  sql.NullString `db:"generated_response"`
	TimeSlots          pq.StringArray `db:"time_slots"`
	AttachmentsNeeded  pq.StringArray `db:"attachments_needed"`
	SuggestedTime      sql.NullTime   `db:"suggested_time"`
	Deadline           sql.NullTime   `db:"deadline"`
	ActionItems        pq.StringArray `db:"action_items"`
	Priority           string         `db:"priority"`
	LinkedInProfileURL sql.NullString `db:"linkedin_profile_url"`
	Status             string         `db:"status"`
	CreatedAt          time.Time      `db:"created_at"`
}

const suggestionColumns = `s.id, s.email_id, s.type, s.title, s.description, s.generated_response,
	s.time_slots, s.attachments_needed, s.suggested_time, s.deadline, s.action_items,
	s.priority, s.linkedin_profile_url, s.status, s.created_at`

// PendingSuggestions returns a user's pending suggestions, soonest deadline
// first, undated rows last.
func (s *Store) PendingSuggestions(ctx context.Context, userID string) ([]models.StoredSuggestion, error) {
	return s.querySuggestions(ctx, `
		SELECT `+suggestionColumns+`
		FROM email_suggestions s
		JOIN email_records e ON e.id = s.email_id
		WHERE e.user_id = $1 AND s.status = 'pending'
		ORDER BY s.deadline ASC NULLS LAST, s.created_at DESC`, userID)
}

// OverdueSuggestions returns pending suggestions whose deadline has passed
// and flags their tracking rows as overdue.
func (s *Store) OverdueSuggestions(ctx context.Context, userID string) ([]models.StoredSuggestion, error) {
	overdue, err := s.querySuggestions(ctx, `
		SELECT `+suggestionColumns+`
		FROM email_suggestions s
		JOIN email_records e ON e.id = s.email_id
		WHERE e.user_id = $1 AND s.status = 'pending' AND s.deadline < NOW()
		ORDER BY s.deadline ASC`, userID)
	if err != nil {
		return nil, err
	}

	for _, suggestion := range overdue {
		_, err := s.db.ExecContext(ctx, `
			UPDATE follow_up_tracking SET status = 'overdue', updated_at = NOW()
			WHERE suggestion_id = $1 AND status = 'pending'`, suggestion.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to mark follow-up overdue: %w", err)
		}
	}
	return overdue, nil
}

// UpdateSuggestionStatus marks a suggestion completed or dismissed and
// mirrors the state into follow-up tracking.
func (s *Store) UpdateSuggestionStatus(ctx context.Context, suggestionID string, status models.SuggestionStatus) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE email_suggestions SET status = $2, updated_at = NOW() WHERE id = $1`,
		suggestionID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update suggestion status: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}

	completedAt := sql.NullTime{}
	if status == models.SuggestionCompleted {
		completedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE follow_up_tracking SET status = $2, completed_at = $3, updated_at = NOW()
		WHERE suggestion_id = $1`,
		suggestionID, string(status), completedAt)
	if err != nil {
		return fmt.Errorf("failed to update follow-up tracking: %w", err)
	}
	return nil
}

func (s *Store) querySuggestions(ctx context.Context, query string, args ...interface{}) ([]models.StoredSuggestion, error) {
	var rows []suggestionRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}

	suggestions := make([]models.StoredSuggestion, 0, len(rows))
	for _, row := range rows {
		suggestion := models.Suggestion{
			ID:                 row.ID,
			EmailID:            row.EmailID,
			Type:               models.SuggestionType(row.Type),
			Title:              row.Title,
			Description:        row.Description,
			GeneratedResponse:  row.GeneratedResponse.String,
			TimeSlots:          row.TimeSlots,
			AttachmentsNeeded:  row.AttachmentsNeeded,
			ActionItems:        row.ActionItems,
			Priority:           models.Priority(row.Priority),
			LinkedInProfileURL: row.LinkedInProfileURL.String,
			CreatedAt:          row.CreatedAt,
		}
		if row.SuggestedTime.Valid {
			suggestion.SuggestedTime = row.SuggestedTime.Time.Format(time.RFC3339)
		}
		if row.Deadline.Valid {
			deadline := row.Deadline.Time
			suggestion.Deadline = &deadline
		}
		suggestions = append(suggestions, models.StoredSuggestion{
			Suggestion: suggestion,
			Status:     models.SuggestionStatus(row.Status),
		})
	}
	return suggestions, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// parseTimestamp converts an RFC 3339 string into a nullable timestamp.
func parseTimestamp(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
