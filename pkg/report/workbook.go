package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farmdash/entities"
)

const sheetName = "Transactions"

// BuildTransactionsWorkbook renders an organization's transactions as a
// ledger sheet: one row per transaction, expenses negative, total at the end.
func BuildTransactionsWorkbook(txns []entities.Transaction) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Type", "Vendor", "Description", "Amount"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, hdr); err != nil {
			return nil, err
		}
	}

	total := 0.0
	for i, t := range txns {
		row := i + 2
		amount := t.TotalAmount
		if t.Type == entities.TxnExpense {
			amount = -amount
		}
		total += amount
		values := []any{t.Date.Format("2006-01-02"), string(t.Type), t.Vendor, t.Description, amount}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(txns) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), total); err != nil {
		return nil, err
	}

	return f, nil
}
