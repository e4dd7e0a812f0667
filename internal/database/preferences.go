package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"inboxzero/internal/models"
)

// LoadPreferences returns the stored preferences for a user, falling back to
// the built-in defaults when none exist yet.
func (s *Store) LoadPreferences(ctx context.Context, userID string) (models.UserPreferences, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `SELECT preferences_json FROM user_preferences WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	var prefs models.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return models.UserPreferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}

// SavePreferences upserts a user's preferences.
func (s *Store) SavePreferences(ctx context.Context, userID string, prefs models.UserPreferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, preferences_json, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			preferences_json = EXCLUDED.preferences_json,
			updated_at = NOW()`,
		userID, raw)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
