package serviceImp

import (
	"time"

	"farmdash/entities"
	"farmdash/pkg/budget/repository"
	"farmdash/pkg/budget/service"
)

type budgetSvc struct{ r repository.BudgetRepository }

func New(r repository.BudgetRepository) service.BudgetService { return &budgetSvc{r} }

// MonthWindow returns the inclusive bounds of the calendar month at the
// given offset from now: first day 00:00:00 through last day 23:59:59.
func MonthWindow(now time.Time, monthOffset int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, monthOffset, 0)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func (s *budgetSvc) ListThisMonth(orgID string) ([]entities.Budget, error) {
	from, to := MonthWindow(time.Now(), 0)
	return s.r.ListByDateRange(orgID, from, to)
}

func (s *budgetSvc) ListNextMonth(orgID string) ([]entities.Budget, error) {
	from, to := MonthWindow(time.Now(), 1)
	return s.r.ListByDateRange(orgID, from, to)
}
