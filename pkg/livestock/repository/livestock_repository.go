package repository

import "farmdash/entities"

type LivestockRepository interface {
	Create(l *entities.Livestock) error
	FindByID(id string) (*entities.Livestock, error)
	ListByFarm(farmID string) ([]entities.Livestock, error)
	ListByOrganization(orgID string) ([]entities.Livestock, error)
	UpdatePartial(id string, fields map[string]any) error
	Delete(id string) error
}
