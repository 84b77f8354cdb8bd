package repositoryImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) CreateIdempotent(u *entities.User) (string, error) {
	var existing entities.User
	err := r.db.Where("auth_id = ?", u.AuthID).First(&existing).Error
	if err == nil {
		return existing.UserID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	if u.FarmIDs == nil {
		u.FarmIDs = []string{}
	}
	if err := r.db.Create(u).Error; err != nil {
		return "", err
	}
	return u.UserID, nil
}

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByAuthID(authID string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("auth_id = ?", authID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
