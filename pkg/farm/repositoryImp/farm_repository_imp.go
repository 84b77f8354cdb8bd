package repositoryImp

import (
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) FindByID(id string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Where("farm_id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) ListByOrganization(orgID string) ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) ListAll() ([]entities.Farm, error) {
	var out []entities.Farm
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *farmRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Farm{}).Where("farm_id = ?", id).Updates(fields).Error
}

func (r *farmRepo) Delete(id string) error {
	return r.db.Where("farm_id = ?", id).Delete(&entities.Farm{}).Error
}
