package repository

import "farmdash/entities"

type LaborRepository interface {
	Create(l *entities.Labor) error
	FindByID(id string) (*entities.Labor, error)
	ListByOrganization(orgID string) ([]entities.Labor, error)
	UpdatePartial(id string, fields map[string]any) error
	// Delete is a hard delete; tasks referencing the labor id keep their
	// dangling assignee reference.
	Delete(id string) error
}
