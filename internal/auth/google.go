// Package auth builds the Google OAuth configuration used by the Gmail and
// Calendar clients. Token storage and refresh are left to the caller; the
// core pipeline only ever sees a ready token.
package auth

import (
	"context"
	"fmt"

	"inboxzero/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// scopes covers read-only inbox and calendar access.
var scopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
}

// GoogleOAuthConfig builds the oauth2 config from application config.
func GoogleOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
}

// AuthURL returns the consent URL requesting offline access so a refresh
// token is issued.
func AuthURL(oauthConfig *oauth2.Config, state string) string {
	return oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a token.
func Exchange(ctx context.Context, oauthConfig *oauth2.Config, code string) (*oauth2.Token, error) {
	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// TokenFromAccess wraps a bare access token (as sent by the web client) into
// an oauth2 token.
func TokenFromAccess(accessToken string) *oauth2.Token {
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
}
