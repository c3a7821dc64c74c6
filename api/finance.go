package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/models"
)

// FinanceService covers the wallet: balance, transaction history, and
// deposits/withdrawals.
type FinanceService struct {
	client *Client
}

type amountRequest struct {
	Amount json.Number `json:"amount"`
}

// Balance fetches the wallet balance.
func (s *FinanceService) Balance(ctx context.Context) (models.Balance, error) {
	var out models.Balance
	if err := s.client.do(ctx, http.MethodGet, "/finance/balance", nil, &out); err != nil {
		return models.Balance{}, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return out, nil
}

// Transactions fetches the wallet transaction history. Filtering and
// search happen locally (package listview), never server-side.
func (s *FinanceService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := s.client.do(ctx, http.MethodGet, "/finance/transactions", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return out, nil
}

// Deposit adds funds to the wallet and returns the resulting
// transaction record.
func (s *FinanceService) Deposit(ctx context.Context, amount decimal.Decimal) (models.Transaction, error) {
	var out models.Transaction
	body := amountRequest{Amount: json.Number(amount.String())}
	if err := s.client.do(ctx, http.MethodPost, "/finance/deposit", body, &out); err != nil {
		return models.Transaction{}, fmt.Errorf("deposit failed: %w", err)
	}
	return out, nil
}

// Withdraw moves funds out of the wallet.
func (s *FinanceService) Withdraw(ctx context.Context, amount decimal.Decimal) (models.Transaction, error) {
	var out models.Transaction
	body := amountRequest{Amount: json.Number(amount.String())}
	if err := s.client.do(ctx, http.MethodPost, "/finance/withdraw", body, &out); err != nil {
		return models.Transaction{}, fmt.Errorf("withdrawal failed: %w", err)
	}
	return out, nil
}
