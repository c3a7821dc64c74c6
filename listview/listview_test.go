package listview

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/worklane/worklane-go/models"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "tx-1", Type: "deposit", Status: "completed", Description: "Top up from card"},
		{ID: "tx-2", Type: "withdrawal", Status: "pending", Description: "Payout to bank"},
		{ID: "tx-3", Type: "fee", Status: "completed", Description: "Service fee"},
		{ID: "tx-4", Type: "deposit", Status: "failed", Description: "Top up from PayPal"},
	}
}

func TestTransactionFilterApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filter  TransactionFilter
		wantIDs []string
	}{
		{
			name:    "zero filter passes everything",
			filter:  TransactionFilter{},
			wantIDs: []string{"tx-1", "tx-2", "tx-3", "tx-4"},
		},
		{
			name:    "by status",
			filter:  TransactionFilter{Status: "completed"},
			wantIDs: []string{"tx-1", "tx-3"},
		},
		{
			name:    "by type",
			filter:  TransactionFilter{Type: "deposit"},
			wantIDs: []string{"tx-1", "tx-4"},
		},
		{
			name:    "search is case-insensitive on description",
			filter:  TransactionFilter{Search: "TOP UP"},
			wantIDs: []string{"tx-1", "tx-4"},
		},
		{
			name:    "search matches IDs too",
			filter:  TransactionFilter{Search: "tx-3"},
			wantIDs: []string{"tx-3"},
		},
		{
			name:    "filters combine",
			filter:  TransactionFilter{Type: "deposit", Status: "failed"},
			wantIDs: []string{"tx-4"},
		},
		{
			name:    "no matches yields empty, not nil",
			filter:  TransactionFilter{Search: "no such thing"},
			wantIDs: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := test.filter.Apply(sampleTransactions())
			require.NotNil(t, got)

			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			require.Equal(t, test.wantIDs, ids)
		})
	}
}

func TestFilterGeneric(t *testing.T) {
	t.Parallel()

	nums := []int{1, 2, 3, 4, 5, 6}
	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 3 }

	require.Equal(t, []int{4, 6}, Filter(nums, even, big))
	require.Equal(t, nums, Filter(nums))
	require.Empty(t, Filter([]int{}, even))
}

func TestExpandedSet(t *testing.T) {
	t.Parallel()

	s := NewExpandedSet()
	require.False(t, s.Expanded("a"))

	require.True(t, s.Toggle("a"))
	require.True(t, s.Expanded("a"))

	require.True(t, s.Toggle("b"))
	require.False(t, s.Toggle("a"))
	require.False(t, s.Expanded("a"))
	require.True(t, s.Expanded("b"))

	s.Collapse()
	require.False(t, s.Expanded("b"))
}
