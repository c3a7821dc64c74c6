package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/models"
)

// BudgetService manages budgets and their analytics.
type BudgetService struct {
	client *Client
}

// BudgetAnalytics is the server-computed summary returned alongside
// budget CRUD.
type BudgetAnalytics struct {
	TotalBudgeted  decimal.Decimal            `json:"total_budgeted"`
	TotalSpent     decimal.Decimal            `json:"total_spent"`
	SpentByCat     map[string]decimal.Decimal `json:"spent_by_category"`
	UsagePercent   float64                    `json:"usage_percent"`
	ActiveBudgets  int                        `json:"active_budgets"`
	OverrunBudgets int                        `json:"overrun_budgets"`
}

// List fetches all budgets.
func (s *BudgetService) List(ctx context.Context) ([]models.Budget, error) {
	var out []models.Budget
	if err := s.client.do(ctx, http.MethodGet, "/budgets", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return out, nil
}

// Create posts a normalized budget draft payload.
func (s *BudgetService) Create(ctx context.Context, budget models.BudgetCreate) (models.Budget, error) {
	var out models.Budget
	if err := s.client.do(ctx, http.MethodPost, "/budgets", budget, &out); err != nil {
		return models.Budget{}, fmt.Errorf("failed to create budget: %w", err)
	}
	return out, nil
}

// Update patches an existing budget.
func (s *BudgetService) Update(ctx context.Context, id string, budget models.BudgetCreate) (models.Budget, error) {
	var out models.Budget
	if err := s.client.do(ctx, http.MethodPatch, "/budgets/"+id, budget, &out); err != nil {
		return models.Budget{}, fmt.Errorf("failed to update budget: %w", err)
	}
	return out, nil
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/budgets/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// Analytics fetches the server-side budget summary.
func (s *BudgetService) Analytics(ctx context.Context) (BudgetAnalytics, error) {
	var out BudgetAnalytics
	if err := s.client.do(ctx, http.MethodGet, "/budgets/analytics", nil, &out); err != nil {
		return BudgetAnalytics{}, fmt.Errorf("failed to fetch budget analytics: %w", err)
	}
	return out, nil
}

// Types fetches the budget type catalog shown in the create form.
func (s *BudgetService) Types(ctx context.Context) ([]BudgetTypeInfo, error) {
	var out struct {
		BudgetTypes []BudgetTypeInfo `json:"budget_types"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/budgets/types", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch budget types: %w", err)
	}
	return out.BudgetTypes, nil
}

// BudgetTypeInfo describes one selectable budget type.
type BudgetTypeInfo struct {
	ID          models.BudgetType `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
}

// DefaultCategoryInfo is a quick-start category suggestion.
type DefaultCategoryInfo struct {
	Name  string      `json:"name"`
	Share json.Number `json:"share,omitempty"`
	Color string      `json:"color"`
	Icon  string      `json:"icon"`
}

// DefaultCategories fetches the quick-start category suggestions.
func (s *BudgetService) DefaultCategories(ctx context.Context) ([]DefaultCategoryInfo, error) {
	var out struct {
		DefaultCategories []DefaultCategoryInfo `json:"default_categories"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/budgets/default-categories", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch default categories: %w", err)
	}
	return out.DefaultCategories, nil
}
