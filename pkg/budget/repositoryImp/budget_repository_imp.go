package repositoryImp

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/budget/repository"
)

type budgetRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BudgetRepository { return &budgetRepo{db} }

func (r *budgetRepo) Create(b *entities.Budget) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if b.BudgetID == "" {
		b.BudgetID = uuid.NewString()
	}
	return r.db.Create(b).Error
}

func (r *budgetRepo) FindByID(id string) (*entities.Budget, error) {
	var b entities.Budget
	if err := r.db.Where("budget_id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *budgetRepo) ListByOrganization(orgID string) ([]entities.Budget, error) {
	var out []entities.Budget
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *budgetRepo) ListByDateRange(orgID string, from, to time.Time) ([]entities.Budget, error) {
	var out []entities.Budget
	err := r.db.
		Where("organization_id = ? AND date_required >= ? AND date_required <= ?", orgID, from, to).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *budgetRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Budget{}).Where("budget_id = ?", id).Updates(fields).Error
}

func (r *budgetRepo) Delete(id string) error {
	return r.db.Where("budget_id = ?", id).Delete(&entities.Budget{}).Error
}
