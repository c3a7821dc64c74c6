package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// ReviewService reads and posts task reviews.
type ReviewService struct {
	client *Client
}

// ReviewCreate is the body for posting a review.
type ReviewCreate struct {
	TaskID  string `json:"task_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// ForUser fetches the reviews left for a user.
func (s *ReviewService) ForUser(ctx context.Context, userID string) ([]models.Review, error) {
	var out []models.Review
	if err := s.client.do(ctx, http.MethodGet, "/users/"+userID+"/reviews", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return out, nil
}

// Create posts a review for a completed task.
func (s *ReviewService) Create(ctx context.Context, review ReviewCreate) (models.Review, error) {
	var out models.Review
	if err := s.client.do(ctx, http.MethodPost, "/reviews", review, &out); err != nil {
		return models.Review{}, fmt.Errorf("failed to create review: %w", err)
	}
	return out, nil
}
