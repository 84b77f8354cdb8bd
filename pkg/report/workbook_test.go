package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdash/entities"
)

func TestBuildTransactionsWorkbook(t *testing.T) {
	txns := []entities.Transaction{
		{
			TransactionID: "t1", Type: entities.TxnRevenue, TotalAmount: 200,
			Date: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), Vendor: "Co-op",
			Description: "maize sale",
		},
		{
			TransactionID: "t2", Type: entities.TxnExpense, TotalAmount: 50,
			Date: time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC), Vendor: "AgroMart",
			Description: "fertilizer",
		},
	}

	f, err := BuildTransactionsWorkbook(txns)
	require.NoError(t, err)

	get := func(cell string) string {
		v, err := f.GetCellValue("Transactions", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Date", get("A1"))
	assert.Equal(t, "Amount", get("E1"))

	assert.Equal(t, "2026-05-01", get("A2"))
	assert.Equal(t, "revenue", get("B2"))
	assert.Equal(t, "200", get("E2"))

	assert.Equal(t, "2026-05-03", get("A3"))
	assert.Equal(t, "-50", get("E3"), "expenses are negated")

	assert.Equal(t, "Total", get("D4"))
	assert.Equal(t, "150", get("E4"))
}

func TestBuildTransactionsWorkbookEmpty(t *testing.T) {
	f, err := BuildTransactionsWorkbook(nil)
	require.NoError(t, err)

	v, err := f.GetCellValue("Transactions", "E2")
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	v, err = f.GetCellValue("Transactions", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)
}
