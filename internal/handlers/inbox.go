package handlers

import (
	"context"
	"net/http"

	"inboxzero/internal/auth"
	"inboxzero/internal/models"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
)

// InboxProcessor runs the inbox pipeline for one user.
type InboxProcessor interface {
	Process(ctx context.Context, token *oauth2.Token, userID string, maxEmails int) (*models.ProcessInboxResponse, error)
}

// ProcessInboxHandler handles inbox processing requests
// @Summary Process inbox
// @Description Fetches recent emails, classifies them and returns ranked actionable results
// @Tags Inbox
// @Accept json
// @Produce json
// @Param request body models.ProcessInboxRequest true "Processing request"
// @Success 200 {object} models.ProcessInboxResponse
// @Failure 400 {object} models.ProcessInboxResponse
// @Failure 500 {object} models.ProcessInboxResponse
// @Router /api/inbox/process [post]
func ProcessInboxHandler(processor InboxProcessor, defaultMaxEmails int) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ProcessInboxRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ProcessInboxResponse{Error: "Invalid request body"})
		}
		if req.AccessToken == "" {
			return c.JSON(http.StatusBadRequest, models.ProcessInboxResponse{Error: "access_token is required"})
		}
		if req.UserID == "" {
			return c.JSON(http.StatusBadRequest, models.ProcessInboxResponse{Error: "user_id is required"})
		}
		if req.MaxEmails <= 0 {
			req.MaxEmails = defaultMaxEmails
		}

		token := auth.TokenFromAccess(req.AccessToken)
		resp, err := processor.Process(c.Request().Context(), token, req.UserID, req.MaxEmails)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ProcessInboxResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
