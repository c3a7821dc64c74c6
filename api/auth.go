package api

import (
	"context"
	"fmt"
	"net/http"
)

// AuthService handles login, registration, and OAuth callbacks.
type AuthService struct {
	client *Client
}

// Credentials is the email/password login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued on successful auth.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for an access token.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var out TokenResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return TokenResponse{}, fmt.Errorf("login failed: %w", err)
	}
	return out, nil
}

// Register creates an account and returns its first access token.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var out TokenResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/register", creds, &out); err != nil {
		return TokenResponse{}, fmt.Errorf("registration failed: %w", err)
	}
	return out, nil
}

// OAuthCallback exchanges a provider token (google, github, ...) for a
// platform access token.
func (s *AuthService) OAuthCallback(ctx context.Context, provider, providerToken string) (TokenResponse, error) {
	body := map[string]string{"access_token": providerToken}
	var out TokenResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/"+provider+"/callback", body, &out); err != nil {
		return TokenResponse{}, fmt.Errorf("oauth callback failed: %w", err)
	}
	return out, nil
}
