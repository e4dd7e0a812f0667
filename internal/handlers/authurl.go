package handlers

import (
	"net/http"

	"inboxzero/internal/auth"
	"inboxzero/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
)

// AuthURLHandler returns the Google OAuth consent URL
// @Summary Google consent URL
// @Description Returns the URL to start the Google OAuth flow with Gmail and Calendar scopes
// @Tags Auth
// @Produce json
// @Param state query string false "Opaque state echoed back on the callback"
// @Success 200 {object} models.AuthURLResponse
// @Router /api/auth/google/url [get]
func AuthURLHandler(oauthConfig *oauth2.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := c.QueryParam("state")
		if state == "" {
			state = uuid.New().String()
		}
		return c.JSON(http.StatusOK, models.AuthURLResponse{URL: auth.AuthURL(oauthConfig, state)})
	}
}
