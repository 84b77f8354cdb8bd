package repository

import "farmdash/entities"

type CropRepository interface {
	Create(cr *entities.Crop) error
	FindByID(id string) (*entities.Crop, error)
	ListByFarm(farmID string) ([]entities.Crop, error)
	ListByOrganization(orgID string) ([]entities.Crop, error)
	UpdatePartial(id string, fields map[string]any) error
	Delete(id string) error
}
