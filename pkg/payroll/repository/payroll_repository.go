package repository

import "farmdash/entities"

type PayrollRepository interface {
	Create(p *entities.Payroll) error
	FindByID(id string) (*entities.Payroll, error)
	ListByLabor(laborID string) ([]entities.Payroll, error)
	ListByOrganization(orgID string) ([]entities.Payroll, error)
	Delete(id string) error
}
