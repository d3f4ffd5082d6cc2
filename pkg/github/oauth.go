package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// ErrEmptyToken is returned when the exchange succeeds without a token.
var ErrEmptyToken = errors.New("github: oauth exchange returned no access token")

type oauthImpl struct {
	config *oauth2.Config
}

// NewOAuth creates an OAuth code exchanger for the configured app
func NewOAuth(cfg OAuthConfig) (IOAuth, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	endpoint := githuboauth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return &oauthImpl{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
	}, nil
}

// Exchange trades an authorization code for an access token
func (o *oauthImpl) Exchange(ctx context.Context, code string) (string, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			// GitHub reports a bad code with 200 and an error field
			status := retrieveErr.Response.StatusCode
			if status < http.StatusBadRequest {
				status = http.StatusUnauthorized
			}
			return "", &APIError{Op: "oauth exchange", StatusCode: status, Message: retrieveErr.ErrorCode}
		}
		return "", fmt.Errorf("github: oauth exchange: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrEmptyToken
	}
	return token.AccessToken, nil
}
