package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/payroll/repository"
)

type payrollRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PayrollRepository { return &payrollRepo{db} }

func (r *payrollRepo) Create(p *entities.Payroll) error {
	if p.PayrollID == "" {
		p.PayrollID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *payrollRepo) FindByID(id string) (*entities.Payroll, error) {
	var p entities.Payroll
	if err := r.db.Where("payroll_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payrollRepo) ListByLabor(laborID string) ([]entities.Payroll, error) {
	var out []entities.Payroll
	if err := r.db.Where("labor_id = ?", laborID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *payrollRepo) ListByOrganization(orgID string) ([]entities.Payroll, error) {
	var out []entities.Payroll
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *payrollRepo) Delete(id string) error {
	return r.db.Where("payroll_id = ?", id).Delete(&entities.Payroll{}).Error
}
