package repository

import "farmdash/entities"

type UserRepository interface {
	// CreateIdempotent inserts the user unless one already exists for the
	// same external auth id, in which case the existing id is returned.
	CreateIdempotent(u *entities.User) (string, error)
	FindByID(id string) (*entities.User, error)
	FindByAuthID(authID string) (*entities.User, error)
}
