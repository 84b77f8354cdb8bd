package entities

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TxnRevenue TransactionType = "revenue"
	TxnExpense TransactionType = "expense"
)

type Transaction struct {
	TransactionID  string          `gorm:"primaryKey" json:"transaction_id"`
	FarmID         string          `json:"farm_id"`
	Type           TransactionType `json:"type"`
	TotalAmount    float64         `json:"total_amount"`
	Date           time.Time       `json:"date"`
	Vendor         string          `json:"vendor"`
	Description    string          `json:"description"`
	ReceiptRef     *string         `json:"receipt_ref,omitempty"` // opaque storage reference
	OrganizationID string          `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Transaction) Validate() error {
	switch t.Type {
	case TxnRevenue, TxnExpense:
		return nil
	}
	return fmt.Errorf("invalid transaction type %q", t.Type)
}

type TransactionItem struct {
	ItemID         string      `gorm:"primaryKey" json:"item_id"`
	TransactionID  string      `json:"transaction_id"`
	FarmID         string      `json:"farm_id"`
	Category       string      `json:"category"`
	Amount         float64     `json:"amount"`
	Description    string      `json:"description"`
	RelatedKind    RelatedKind `json:"related_kind,omitempty"`
	RelatedID      string      `json:"related_id,omitempty"`
	OrganizationID string      `json:"organization_id"`

	CreatedAt time.Time
}

func (i *TransactionItem) Validate() error {
	return validateRelated(i.RelatedKind, i.RelatedID, RelatedCrop, RelatedLivestock)
}
