package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// PaymentMethodService manages stored cards and bank accounts.
type PaymentMethodService struct {
	client *Client
}

// List fetches all stored payment methods (masked records).
func (s *PaymentMethodService) List(ctx context.Context) ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	if err := s.client.do(ctx, http.MethodGet, "/payment-methods", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return out, nil
}

// Create stores a new payment method.
func (s *PaymentMethodService) Create(ctx context.Context, method models.PaymentMethodCreate) (models.PaymentMethod, error) {
	var out models.PaymentMethod
	if err := s.client.do(ctx, http.MethodPost, "/payment-methods", method, &out); err != nil {
		return models.PaymentMethod{}, fmt.Errorf("failed to add payment method: %w", err)
	}
	return out, nil
}

// Update replaces a stored payment method.
func (s *PaymentMethodService) Update(ctx context.Context, id string, method models.PaymentMethodCreate) (models.PaymentMethod, error) {
	var out models.PaymentMethod
	if err := s.client.do(ctx, http.MethodPut, "/payment-methods/"+id, method, &out); err != nil {
		return models.PaymentMethod{}, fmt.Errorf("failed to update payment method: %w", err)
	}
	return out, nil
}

// Delete removes a stored payment method.
func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/payment-methods/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}

// SetDefault marks a stored payment method as the default.
func (s *PaymentMethodService) SetDefault(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodPost, "/payment-methods/"+id+"/set-default", nil, nil); err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}
	return nil
}
