package repositoryImp

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/livestock/repository"
)

type livestockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LivestockRepository { return &livestockRepo{db} }

func (r *livestockRepo) Create(l *entities.Livestock) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if l.LivestockID == "" {
		l.LivestockID = uuid.NewString()
	}
	return r.db.Create(l).Error
}

func (r *livestockRepo) FindByID(id string) (*entities.Livestock, error) {
	var l entities.Livestock
	if err := r.db.Where("livestock_id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *livestockRepo) ListByFarm(farmID string) ([]entities.Livestock, error) {
	var out []entities.Livestock
	if err := r.db.Where("farm_id = ?", farmID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *livestockRepo) ListByOrganization(orgID string) ([]entities.Livestock, error) {
	var out []entities.Livestock
	if err := r.db.Where("organization_id = ?", orgID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *livestockRepo) UpdatePartial(id string, fields map[string]any) error {
	return r.db.Model(&entities.Livestock{}).Where("livestock_id = ?", id).Updates(fields).Error
}

func (r *livestockRepo) Delete(id string) error {
	return r.db.Where("livestock_id = ?", id).Delete(&entities.Livestock{}).Error
}
