// Package wallet is the view-model over the finance endpoints. Its
// mutations publish invalidation events so that dependent views
// (balance header, transaction list) refetch explicitly instead of
// being poked by convention.
package wallet

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/api"
	"github.com/worklane/worklane-go/events"
	"github.com/worklane/worklane-go/logger"
	"github.com/worklane/worklane-go/models"
)

// Wallet wraps the finance service with invalidation publishing.
type Wallet struct {
	finance *api.FinanceService
	bus     *events.Bus
}

// New creates a wallet view-model.
func New(finance *api.FinanceService, bus *events.Bus) *Wallet {
	return &Wallet{finance: finance, bus: bus}
}

// Balance fetches the current balance.
func (w *Wallet) Balance(ctx context.Context) (models.Balance, error) {
	return w.finance.Balance(ctx)
}

// Transactions fetches the transaction history.
func (w *Wallet) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return w.finance.Transactions(ctx)
}

// Deposit adds funds and invalidates the balance and transaction
// views on success.
func (w *Wallet) Deposit(ctx context.Context, amount decimal.Decimal) (models.Transaction, error) {
	tx, err := w.finance.Deposit(ctx, amount)
	if err != nil {
		return models.Transaction{}, err
	}

	logger.Log.Info().Str("amount", amount.StringFixed(2)).Msg("Deposit completed")
	w.invalidate()
	return tx, nil
}

// Withdraw moves funds out and invalidates the balance and transaction
// views on success.
func (w *Wallet) Withdraw(ctx context.Context, amount decimal.Decimal) (models.Transaction, error) {
	tx, err := w.finance.Withdraw(ctx, amount)
	if err != nil {
		return models.Transaction{}, err
	}

	logger.Log.Info().Str("amount", amount.StringFixed(2)).Msg("Withdrawal completed")
	w.invalidate()
	return tx, nil
}

func (w *Wallet) invalidate() {
	if w.bus == nil {
		return
	}
	w.bus.Publish(events.TopicBalance)
	w.bus.Publish(events.TopicTransactions)
}
