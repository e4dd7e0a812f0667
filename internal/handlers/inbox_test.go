package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inboxzero/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type stubProcessor struct {
	gotUserID string
	gotMax    int
	gotToken  string
	resp      *models.ProcessInboxResponse
	err       error
}

func (s *stubProcessor) Process(ctx context.Context, token *oauth2.Token, userID string, maxEmails int) (*models.ProcessInboxResponse, error) {
	s.gotUserID = userID
	s.gotMax = maxEmails
	s.gotToken = token.AccessToken
	return s.resp, s.err
}

func postInbox(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/inbox/process", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestProcessInboxHandler(t *testing.T) {
	t.Run("processes with explicit max", func(t *testing.T) {
		stub := &stubProcessor{resp: &models.ProcessInboxResponse{EmailsFetched: 3}}
		rec := postInbox(t, ProcessInboxHandler(stub, 20),
			`{"access_token":"tok","user_id":"user-1","max_emails":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", stub.gotUserID)
		assert.Equal(t, 5, stub.gotMax)
		assert.Equal(t, "tok", stub.gotToken)

		var resp models.ProcessInboxResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.EmailsFetched)
	})

	t.Run("defaults max emails", func(t *testing.T) {
		stub := &stubProcessor{resp: &models.ProcessInboxResponse{}}
		rec := postInbox(t, ProcessInboxHandler(stub, 20),
			`{"access_token":"tok","user_id":"user-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 20, stub.gotMax)
	})

	t.Run("missing access token", func(t *testing.T) {
		rec := postInbox(t, ProcessInboxHandler(&stubProcessor{}, 20), `{"user_id":"user-1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing user id", func(t *testing.T) {
		rec := postInbox(t, ProcessInboxHandler(&stubProcessor{}, 20), `{"access_token":"tok"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("processor failure", func(t *testing.T) {
		stub := &stubProcessor{err: errors.New("gmail unavailable")}
		rec := postInbox(t, ProcessInboxHandler(stub, 20),
			`{"access_token":"tok","user_id":"user-1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp models.ProcessInboxResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "gmail unavailable", resp.Error)
	})
}
