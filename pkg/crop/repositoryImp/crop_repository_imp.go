package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(cr *entities.Crop) error {
	if err := cr.Validate(); err != nil {
		return err
	}
	if cr.CropID == "" {
		cr.CropID = uuid.NewString()
	}
	return r.db.Create(cr).Error
}

func (r *cropRepo) FindByID(id string) (*entities.Crop, error) {
	var cr entities.Crop
	if err := r.db.Where("crop_id = ?", id).First(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *cropRepo) ListByFarm(farmID string) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("farm_id = ?", farmID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) ListByOrganization(orgID string) ([]entities.Crop, error) {
	var out []entities.Crop
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cropRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Crop{}).Where("crop_id = ?", id).Updates(fields).Error
}

func (r *cropRepo) Delete(id string) error {
	return r.db.Where("crop_id = ?", id).Delete(&entities.Crop{}).Error
}
