package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"inboxzero/internal/models"

	"github.com/labstack/echo/v4"
)

// SuggestionStore reads and updates persisted suggestions.
type SuggestionStore interface {
	PendingSuggestions(ctx context.Context, userID string) ([]models.StoredSuggestion, error)
	OverdueSuggestions(ctx context.Context, userID string) ([]models.StoredSuggestion, error)
	UpdateSuggestionStatus(ctx context.Context, suggestionID string, status models.SuggestionStatus) error
}

// PendingSuggestionsHandler handles pending suggestion listing
// @Summary List pending suggestions
// @Description Returns the user's pending suggestions, soonest deadline first
// @Tags Suggestions
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} models.SuggestionsResponse
// @Failure 400 {object} models.SuggestionsResponse
// @Failure 500 {object} models.SuggestionsResponse
// @Router /api/suggestions/pending [get]
func PendingSuggestionsHandler(store SuggestionStore) echo.HandlerFunc {
	return listSuggestions(store.PendingSuggestions)
}

// OverdueSuggestionsHandler handles overdue suggestion listing
// @Summary List overdue suggestions
// @Description Returns pending suggestions whose deadline has passed
// @Tags Suggestions
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {object} models.SuggestionsResponse
// @Failure 400 {object} models.SuggestionsResponse
// @Failure 500 {object} models.SuggestionsResponse
// @Router /api/suggestions/overdue [get]
func OverdueSuggestionsHandler(store SuggestionStore) echo.HandlerFunc {
	return listSuggestions(store.OverdueSuggestions)
}

func listSuggestions(query func(ctx context.Context, userID string) ([]models.StoredSuggestion, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.QueryParam("user_id")
		if userID == "" {
			return c.JSON(http.StatusBadRequest, models.SuggestionsResponse{Error: "user_id is required"})
		}

		suggestions, err := query(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.SuggestionsResponse{Error: err.Error()})
		}
		if suggestions == nil {
			suggestions = []models.StoredSuggestion{}
		}
		return c.JSON(http.StatusOK, models.SuggestionsResponse{Suggestions: suggestions})
	}
}

// CompleteSuggestionHandler marks a suggestion as completed
// @Summary Complete suggestion
// @Description Marks a suggestion and its follow-up tracking as completed
// @Tags Suggestions
// @Produce json
// @Param id path string true "Suggestion id"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.StatusResponse
// @Failure 500 {object} models.StatusResponse
// @Router /api/suggestions/{id}/complete [post]
func CompleteSuggestionHandler(store SuggestionStore) echo.HandlerFunc {
	return updateStatus(store, models.SuggestionCompleted, "Suggestion marked completed")
}

// DismissSuggestionHandler marks a suggestion as dismissed
// @Summary Dismiss suggestion
// @Description Marks a suggestion and its follow-up tracking as dismissed
// @Tags Suggestions
// @Produce json
// @Param id path string true "Suggestion id"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.StatusResponse
// @Failure 500 {object} models.StatusResponse
// @Router /api/suggestions/{id}/dismiss [post]
func DismissSuggestionHandler(store SuggestionStore) echo.HandlerFunc {
	return updateStatus(store, models.SuggestionDismissed, "Suggestion dismissed")
}

func updateStatus(store SuggestionStore, status models.SuggestionStatus, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		suggestionID := c.Param("id")
		err := store.UpdateSuggestionStatus(c.Request().Context(), suggestionID, status)
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, models.StatusResponse{Error: "Suggestion not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.StatusResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, models.StatusResponse{Success: true, Message: message})
	}
}
