package entities

import (
	"fmt"
	"time"
)

type BudgetCategory string

const (
	BudgetOperational BudgetCategory = "operational"
	BudgetCapital     BudgetCategory = "capital"
	BudgetResearch    BudgetCategory = "research"
	BudgetMarketing   BudgetCategory = "marketing"
	BudgetOther       BudgetCategory = "other"
)

type RecurrenceInterval string

const (
	RecurWeekly    RecurrenceInterval = "weekly"
	RecurMonthly   RecurrenceInterval = "monthly"
	RecurQuarterly RecurrenceInterval = "quarterly"
	RecurAnnually  RecurrenceInterval = "annually"
)

type Budget struct {
	BudgetID       string             `gorm:"primaryKey" json:"budget_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Amount         float64            `json:"amount"`
	DateRequired   time.Time          `json:"date_required"`
	Category       BudgetCategory     `json:"category"`
	RelatedKind    RelatedKind        `json:"related_kind,omitempty"`
	RelatedID      string             `json:"related_id,omitempty"`
	IsRecurring    bool               `json:"is_recurring"`
	Recurrence     RecurrenceInterval `json:"recurrence_interval,omitempty"` // meaningful only when IsRecurring
	OrganizationID string             `json:"organization_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidBudgetCategory(c BudgetCategory) bool {
	switch c {
	case BudgetOperational, BudgetCapital, BudgetResearch, BudgetMarketing, BudgetOther:
		return true
	}
	return false
}

func ValidRecurrence(r RecurrenceInterval) bool {
	switch r {
	case RecurWeekly, RecurMonthly, RecurQuarterly, RecurAnnually:
		return true
	}
	return false
}

func (b *Budget) Validate() error {
	if !ValidBudgetCategory(b.Category) {
		return fmt.Errorf("invalid budget category %q", b.Category)
	}
	if b.Recurrence != "" && !ValidRecurrence(b.Recurrence) {
		return fmt.Errorf("invalid recurrence interval %q", b.Recurrence)
	}
	return validateRelated(b.RelatedKind, b.RelatedID, RelatedCrop, RelatedLivestock, RelatedFarm)
}
