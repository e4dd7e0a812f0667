package handlers

import (
	"context"
	"net/http"

	"inboxzero/internal/models"

	"github.com/labstack/echo/v4"
)

// PreferencesStore persists per-user matching preferences.
type PreferencesStore interface {
	LoadPreferences(ctx context.Context, userID string) (models.UserPreferences, error)
	SavePreferences(ctx context.Context, userID string, prefs models.UserPreferences) error
}

// PreferencesInvalidator drops cached preferences after an update.
type PreferencesInvalidator interface {
	InvalidatePreferences(userID string)
}

// GetPreferencesHandler handles preference lookup requests
// @Summary Get preferences
// @Description Returns the user's stored preferences, or defaults when none exist
// @Tags Preferences
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} models.PreferencesResponse
// @Failure 400 {object} models.PreferencesResponse
// @Failure 500 {object} models.PreferencesResponse
// @Router /api/preferences [get]
func GetPreferencesHandler(store PreferencesStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.QueryParam("user_id")
		if userID == "" {
			return c.JSON(http.StatusBadRequest, models.PreferencesResponse{Error: "user_id is required"})
		}

		prefs, err := store.LoadPreferences(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.PreferencesResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, models.PreferencesResponse{Preferences: prefs})
	}
}

// UpdatePreferencesHandler handles preference update requests
// @Summary Update preferences
// @Description Replaces the user's stored preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param user_id query string true "User identifier"
// @Param preferences body models.UserPreferences true "Preferences"
// @Success 200 {object} models.PreferencesResponse
// @Failure 400 {object} models.PreferencesResponse
// @Failure 500 {object} models.PreferencesResponse
// @Router /api/preferences [put]
func UpdatePreferencesHandler(store PreferencesStore, invalidator PreferencesInvalidator) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.QueryParam("user_id")
		if userID == "" {
			return c.JSON(http.StatusBadRequest, models.PreferencesResponse{Error: "user_id is required"})
		}

		var prefs models.UserPreferences
		if err := c.Bind(&prefs); err != nil {
			return c.JSON(http.StatusBadRequest, models.PreferencesResponse{Error: "Invalid request body"})
		}

		if err := store.SavePreferences(c.Request().Context(), userID, prefs); err != nil {
			return c.JSON(http.StatusInternalServerError, models.PreferencesResponse{Error: err.Error()})
		}
		if invalidator != nil {
			invalidator.InvalidatePreferences(userID)
		}
		return c.JSON(http.StatusOK, models.PreferencesResponse{Preferences: prefs})
	}
}
