package service

import "farmdash/entities"

type BudgetService interface {
	// Month windows are computed from the wall clock in the server's local
	// calendar; tenants in other timezones see server-local boundaries.
	ListThisMonth(orgID string) ([]entities.Budget, error)
	ListNextMonth(orgID string) ([]entities.Budget, error)
}
