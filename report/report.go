// Package report renders dashboard charts as PNG images.
package report

import (
	"fmt"

	"github.com/go-analyze/charts"
	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/models"
)

// BudgetAllocationChart creates a pie chart of a budget's planned
// category allocation. Returns PNG image as bytes.
func BudgetAllocationChart(budget models.Budget) ([]byte, error) {
	if len(budget.Categories) == 0 {
		return nil, fmt.Errorf("budget has no categories to chart")
	}

	var values []float64
	var names []string
	for _, c := range budget.Categories {
		names = append(names, c.Name)
		values = append(values, c.Planned.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Budget Allocation - %s", budget.Name),
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// SpendingBreakdownChart creates a pie chart of transaction amounts
// grouped by category. Returns PNG image as bytes.
func SpendingBreakdownChart(transactions []models.Transaction, period string) ([]byte, error) {
	if len(transactions) == 0 {
		return nil, fmt.Errorf("no transactions to chart")
	}

	totals := aggregateByCategory(transactions)

	var values []float64
	var names []string
	for name, total := range totals {
		names = append(names, name)
		values = append(values, total.InexactFloat64())
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Spending Breakdown - %s", period),
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}

// aggregateByCategory groups transactions and returns category totals.
func aggregateByCategory(transactions []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for _, tx := range transactions {
		name := tx.Category
		if name == "" {
			name = "Uncategorized"
		}

		if existing, ok := totals[name]; ok {
			totals[name] = existing.Add(tx.Amount)
		} else {
			totals[name] = tx.Amount
		}
	}

	return totals
}
