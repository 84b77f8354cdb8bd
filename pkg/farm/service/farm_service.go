package service

import "farmdash/entities"

type BootstrapInput struct {
	OrganizationID   string
	OrganizationName string
	OrgSlug          string
	CreatedByAuthID  string
}

type FarmService interface {
	// Create inserts a farm owned by the authenticated caller and appends
	// the farm id to the owner's farm list in the same transaction.
	Create(callerAuthID string, f *entities.Farm) (string, error)
	// CreateFromOrganization is the provisioning bootstrap: idempotent by
	// organization id, owner resolved from the caller-supplied auth id.
	CreateFromOrganization(in BootstrapInput) (string, error)
	ListByOwner(callerAuthID string) ([]entities.Farm, error)
}
