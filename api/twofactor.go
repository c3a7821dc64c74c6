package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// TwoFactorService handles TOTP enrollment and verification.
type TwoFactorService struct {
	client *Client
}

type codeRequest struct {
	Code string `json:"code"`
}

// Setup starts enrollment and returns the secret and otpauth URL the
// authenticator app consumes.
func (s *TwoFactorService) Setup(ctx context.Context) (models.TwoFactorSetup, error) {
	var out models.TwoFactorSetup
	if err := s.client.do(ctx, http.MethodPost, "/auth/2fa/setup", nil, &out); err != nil {
		return models.TwoFactorSetup{}, fmt.Errorf("2fa setup failed: %w", err)
	}
	return out, nil
}

// Enable confirms enrollment with a code from the authenticator app.
func (s *TwoFactorService) Enable(ctx context.Context, code string) error {
	if err := s.client.do(ctx, http.MethodPost, "/auth/2fa/enable", codeRequest{Code: code}, nil); err != nil {
		return fmt.Errorf("2fa enable failed: %w", err)
	}
	return nil
}

// Verify checks a code during login.
func (s *TwoFactorService) Verify(ctx context.Context, code string) (TokenResponse, error) {
	var out TokenResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/2fa/verify", codeRequest{Code: code}, &out); err != nil {
		return TokenResponse{}, fmt.Errorf("2fa verify failed: %w", err)
	}
	return out, nil
}

// Disable turns 2FA off, confirmed by a current code.
func (s *TwoFactorService) Disable(ctx context.Context, code string) error {
	if err := s.client.do(ctx, http.MethodPost, "/auth/2fa/disable", codeRequest{Code: code}, nil); err != nil {
		return fmt.Errorf("2fa disable failed: %w", err)
	}
	return nil
}
