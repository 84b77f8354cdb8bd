package repository

import "farmdash/entities"

type FarmRepository interface {
	FindByID(id string) (*entities.Farm, error)
	ListByOrganization(orgID string) ([]entities.Farm, error)
	ListAll() ([]entities.Farm, error)
	UpdatePartial(id string, fields map[string]any) error
	Delete(id string) error
}
