package repository

import "farmdash/entities"

type TaskRepository interface {
	Create(t *entities.Task) error
	FindByID(id string) (*entities.Task, error)
	ListByFarm(farmID string) ([]entities.Task, error)
	ListByOrganization(orgID string) ([]entities.Task, error)
	ListPending(orgID string) ([]entities.Task, error)
	ListByAssignee(laborID string) ([]entities.Task, error)
	UpdatePartial(id string, fields map[string]any) error
	Delete(id string) error
}
