package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rohits-web03/quick4lio/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func NewGoogleOauthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// FetchGoogleUser exchanges an authorization code and reads the profile of
// the signed-in Google account.
func FetchGoogleUser(ctx context.Context, conf *oauth2.Config, code string) (GoogleUser, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return GoogleUser{}, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := conf.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return GoogleUser{}, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return GoogleUser{}, fmt.Errorf("read user info: %w", err)
	}

	var gu GoogleUser
	if err := json.Unmarshal(data, &gu); err != nil {
		return GoogleUser{}, fmt.Errorf("parse user info: %w", err)
	}
	return gu, nil
}
