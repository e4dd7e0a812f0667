// Package gmail fetches inbox messages over the Gmail API and maps them
// into the pipeline's Email shape.
package gmail

import (
	"context"
	"fmt"
	"time"

	"inboxzero/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// inboxQuery selects the messages worth analyzing.
const inboxQuery = "is:unread OR in:inbox"

// Fetcher lists and downloads messages for one user.
type Fetcher struct {
	oauthConfig *oauth2.Config
	logger      zerolog.Logger
}

// NewFetcher creates a Gmail fetcher.
func NewFetcher(oauthConfig *oauth2.Config, logger zerolog.Logger) *Fetcher {
	return &Fetcher{oauthConfig: oauthConfig, logger: logger}
}

// service creates a Gmail client bound to the user's token.
func (f *Fetcher) service(ctx context.Context, token *oauth2.Token) (*gmail.Service, error) {
	client := f.oauthConfig.Client(ctx, token)
	return gmail.NewService(ctx, option.WithHTTPClient(client))
}

// FetchEmails downloads up to maxResults inbox messages in full and converts
// them. Messages that fail to download are logged and skipped so one bad
// message never aborts the batch.
func (f *Fetcher) FetchEmails(ctx context.Context, token *oauth2.Token, maxResults int) ([]models.Email, error) {
	svc, err := f.service(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	resp, err := svc.Users.Messages.List("me").
		Q(inboxQuery).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	emails := make([]models.Email, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		if ref.Id == "" {
			continue
		}
		msg, err := svc.Users.Messages.Get("me", ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			f.logger.Warn().Err(err).Str("message_id", ref.Id).Msg("Skipping message, fetch failed")
			continue
		}
		emails = append(emails, convertMessage(msg))
	}

	return emails, nil
}

// convertMessage maps one Gmail message into the pipeline Email shape.
func convertMessage(msg *gmail.Message) models.Email {
	var headers []*gmail.MessagePartHeader
	var body string
	if msg.Payload != nil {
		headers = msg.Payload.Headers
		body = extractBody(msg.Payload)
	}

	from := headerValue(headers, "From")
	subject := headerValue(headers, "Subject")
	name, addr := parseFromHeader(from)

	date := time.Now().UTC()
	if raw := headerValue(headers, "Date"); raw != "" {
		if parsed, err := parseDateHeader(raw); err == nil {
			date = parsed
		}
	}

	linkedIn := isLinkedInNotification(from, subject, body)
	profileURL := ""
	if linkedIn {
		profileURL = extractProfileURL(body)
	}

	return models.Email{
		ID:                     msg.Id,
		ThreadID:               msg.ThreadId,
		From:                   addr,
		FromName:               name,
		Subject:                subject,
		Body:                   body,
		Date:                   date,
		Snippet:                msg.Snippet,
		IsLinkedInNotification: linkedIn,
		LinkedInProfileURL:     profileURL,
	}
}

// parseDateHeader accepts the common RFC 2822 date header variants.
func parseDateHeader(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, "Mon, 2 Jan 2006 15:04:05 -0700"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date header %q", raw)
}
