package repository

import (
	"time"

	"farmdash/entities"
)

type BudgetRepository interface {
	Create(b *entities.Budget) error
	FindByID(id string) (*entities.Budget, error)
	ListByOrganization(orgID string) ([]entities.Budget, error)
	// ListByDateRange returns budgets whose date_required falls inside
	// [from, to] inclusive.
	ListByDateRange(orgID string, from, to time.Time) ([]entities.Budget, error)
	UpdatePartial(id string, fields map[string]any) error
	Delete(id string) error
}
