package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/models"
)

// GoalService manages financial goals.
type GoalService struct {
	client *Client
}

// List fetches all goals.
func (s *GoalService) List(ctx context.Context) ([]models.FinancialGoal, error) {
	var out []models.FinancialGoal
	if err := s.client.do(ctx, http.MethodGet, "/financial-goals", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return out, nil
}

// Create posts a normalized goal draft payload.
func (s *GoalService) Create(ctx context.Context, goal models.GoalCreate) (models.FinancialGoal, error) {
	var out models.FinancialGoal
	if err := s.client.do(ctx, http.MethodPost, "/financial-goals", goal, &out); err != nil {
		return models.FinancialGoal{}, fmt.Errorf("failed to create goal: %w", err)
	}
	return out, nil
}

// Update patches an existing goal.
func (s *GoalService) Update(ctx context.Context, id string, goal models.GoalCreate) (models.FinancialGoal, error) {
	var out models.FinancialGoal
	if err := s.client.do(ctx, http.MethodPatch, "/financial-goals/"+id, goal, &out); err != nil {
		return models.FinancialGoal{}, fmt.Errorf("failed to update goal: %w", err)
	}
	return out, nil
}

// Delete removes a goal.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/financial-goals/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// Contribute records progress toward a goal.
func (s *GoalService) Contribute(ctx context.Context, id string, amount decimal.Decimal) (models.FinancialGoal, error) {
	var out models.FinancialGoal
	body := amountRequest{Amount: json.Number(amount.String())}
	if err := s.client.do(ctx, http.MethodPost, "/financial-goals/"+id+"/contribute", body, &out); err != nil {
		return models.FinancialGoal{}, fmt.Errorf("failed to record contribution: %w", err)
	}
	return out, nil
}
