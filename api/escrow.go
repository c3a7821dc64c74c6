package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// EscrowService delegates held payments to the backend's payment
// providers. The client never touches provider state directly; it only
// hands the returned handles to the provider SDK/webview.
type EscrowService struct {
	client *Client
}

// PaymentHandle is the provider-specific handle needed to complete a
// payment (client secret, approval URL, invoice payload).
type PaymentHandle struct {
	Provider     string          `json:"provider"`
	ClientSecret string          `json:"client_secret,omitempty"`
	ApprovalURL  string          `json:"approval_url,omitempty"`
	Raw          json.RawMessage `json:"raw,omitempty"`
}

// Get fetches the escrow status for a task payment.
func (s *EscrowService) Get(ctx context.Context, id string) (models.EscrowStatus, error) {
	var out models.EscrowStatus
	if err := s.client.do(ctx, http.MethodGet, "/escrow/"+id, nil, &out); err != nil {
		return models.EscrowStatus{}, fmt.Errorf("failed to fetch escrow status: %w", err)
	}
	return out, nil
}

// StripeIntent creates a Stripe payment intent for the escrow.
func (s *EscrowService) StripeIntent(ctx context.Context, id string) (PaymentHandle, error) {
	var out PaymentHandle
	if err := s.client.do(ctx, http.MethodPost, "/escrow/"+id+"/stripe-intent", nil, &out); err != nil {
		return PaymentHandle{}, fmt.Errorf("failed to create stripe intent: %w", err)
	}
	return out, nil
}

// PayPal creates a PayPal order for the escrow.
func (s *EscrowService) PayPal(ctx context.Context, id string) (PaymentHandle, error) {
	var out PaymentHandle
	if err := s.client.do(ctx, http.MethodPost, "/escrow/"+id+"/paypal", nil, &out); err != nil {
		return PaymentHandle{}, fmt.Errorf("failed to create paypal order: %w", err)
	}
	return out, nil
}

// Qiwi creates a Qiwi invoice for the escrow.
func (s *EscrowService) Qiwi(ctx context.Context, id string) (PaymentHandle, error) {
	var out PaymentHandle
	if err := s.client.do(ctx, http.MethodPost, "/escrow/"+id+"/qiwi", nil, &out); err != nil {
		return PaymentHandle{}, fmt.Errorf("failed to create qiwi invoice: %w", err)
	}
	return out, nil
}

// Release releases the held funds to the counterparty.
func (s *EscrowService) Release(ctx context.Context, id string) (models.EscrowStatus, error) {
	var out models.EscrowStatus
	if err := s.client.do(ctx, http.MethodPost, "/escrow/"+id+"/release", nil, &out); err != nil {
		return models.EscrowStatus{}, fmt.Errorf("failed to release escrow: %w", err)
	}
	return out, nil
}
