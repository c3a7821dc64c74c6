package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// ProfileService reads and updates the authenticated user's profile.
type ProfileService struct {
	client *Client
}

// Me fetches the current profile.
func (s *ProfileService) Me(ctx context.Context) (models.Profile, error) {
	var out models.Profile
	if err := s.client.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return models.Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return out, nil
}

// UpdateMe patches the current profile and returns the updated record.
func (s *ProfileService) UpdateMe(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var out models.Profile
	if err := s.client.do(ctx, http.MethodPatch, "/users/me", update, &out); err != nil {
		return models.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return out, nil
}
