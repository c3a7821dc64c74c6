package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/worklane/worklane-go/models"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47}

func TestBudgetAllocationChart(t *testing.T) {
	t.Parallel()

	budget := models.Budget{
		Name: "August",
		Categories: []models.BudgetCategory{
			{Name: "Rent", Planned: decimal.NewFromInt(700)},
			{Name: "Food", Planned: decimal.NewFromInt(200)},
			{Name: "Transport", Planned: decimal.NewFromInt(100)},
		},
	}

	img, err := BudgetAllocationChart(budget)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	require.Equal(t, pngHeader, img[:4])
}

func TestBudgetAllocationChartNoCategories(t *testing.T) {
	t.Parallel()

	_, err := BudgetAllocationChart(models.Budget{Name: "Empty"})
	require.ErrorContains(t, err, "no categories")
}

func TestSpendingBreakdownChart(t *testing.T) {
	t.Parallel()

	txs := []models.Transaction{
		{Category: "Services", Amount: decimal.NewFromInt(120)},
		{Category: "Services", Amount: decimal.NewFromInt(80)},
		{Category: "Fees", Amount: decimal.NewFromInt(5)},
	}

	img, err := SpendingBreakdownChart(txs, "August 2026")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	require.Equal(t, pngHeader, img[:4])
}

func TestSpendingBreakdownChartEmpty(t *testing.T) {
	t.Parallel()

	_, err := SpendingBreakdownChart(nil, "August 2026")
	require.ErrorContains(t, err, "no transactions")
}

func TestAggregateByCategory(t *testing.T) {
	t.Parallel()

	txs := []models.Transaction{
		{Category: "Services", Amount: decimal.NewFromInt(120)},
		{Category: "Services", Amount: decimal.NewFromInt(80)},
		{Category: "", Amount: decimal.NewFromInt(7)},
		{Category: "Fees", Amount: decimal.RequireFromString("2.50")},
	}

	totals := aggregateByCategory(txs)
	require.Len(t, totals, 3)
	require.True(t, totals["Services"].Equal(decimal.NewFromInt(200)))
	require.True(t, totals["Uncategorized"].Equal(decimal.NewFromInt(7)))
	require.True(t, totals["Fees"].Equal(decimal.RequireFromString("2.50")))
}
