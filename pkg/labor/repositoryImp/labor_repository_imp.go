package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/labor/repository"
)

type laborRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LaborRepository { return &laborRepo{db} }

func (r *laborRepo) Create(l *entities.Labor) error {
	if l.LaborID == "" {
		l.LaborID = uuid.NewString()
	}
	return r.db.Create(l).Error
}

func (r *laborRepo) FindByID(id string) (*entities.Labor, error) {
	var l entities.Labor
	if err := r.db.Where("labor_id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *laborRepo) ListByOrganization(orgID string) ([]entities.Labor, error) {
	var out []entities.Labor
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *laborRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Labor{}).Where("labor_id = ?", id).Updates(fields).Error
}

func (r *laborRepo) Delete(id string) error {
	return r.db.Where("labor_id = ?", id).Delete(&entities.Labor{}).Error
}
