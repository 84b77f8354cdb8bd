package serviceImp

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/farm/service"
)

var ErrUserNotFound = errors.New("user not found")

type farmSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.FarmService { return &farmSvc{db} }

func (s *farmSvc) Create(callerAuthID string, f *entities.Farm) (string, error) {
	var owner entities.User
	if err := s.db.Where("auth_id = ?", callerAuthID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	f.FarmID = uuid.NewString()
	f.OwnerID = owner.UserID
	if err := s.insertAndLink(f, &owner); err != nil {
		return "", err
	}
	return f.FarmID, nil
}

func (s *farmSvc) CreateFromOrganization(in service.BootstrapInput) (string, error) {
	// Re-invocation with the same organization id returns the existing farm.
	var existing entities.Farm
	err := s.db.Where("organization_id = ?", in.OrganizationID).First(&existing).Error
	if err == nil {
		return existing.FarmID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var owner entities.User
	if err := s.db.Where("auth_id = ?", in.CreatedByAuthID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	f := &entities.Farm{
		FarmID:         uuid.NewString(),
		Name:           in.OrganizationName,
		Location:       "Not specified", // can be updated later
		Size:           0,
		OwnerID:        owner.UserID,
		OrganizationID: in.OrganizationID,
		OrgSlug:        in.OrgSlug,
	}
	if err := s.insertAndLink(f, &owner); err != nil {
		return "", err
	}
	return f.FarmID, nil
}

// insertAndLink writes the farm and the owner's farm-id append as one
// transaction so a crash cannot leave the list out of step with the table.
func (s *farmSvc) insertAndLink(f *entities.Farm, owner *entities.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		owner.FarmIDs = append(owner.FarmIDs, f.FarmID)
		return tx.Model(owner).Where("user_id = ?", owner.UserID).Update("farm_ids", owner.FarmIDs).Error
	})
}

func (s *farmSvc) ListByOwner(callerAuthID string) ([]entities.Farm, error) {
	var owner entities.User
	if err := s.db.Where("auth_id = ?", callerAuthID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entities.Farm{}, nil
		}
		return nil, err
	}
	out := make([]entities.Farm, 0, len(owner.FarmIDs))
	for _, fid := range owner.FarmIDs {
		var f entities.Farm
		if err := s.db.Where("farm_id = ?", fid).First(&f).Error; err != nil {
			continue // deleted farms stay in the list, skip them
		}
		out = append(out, f)
	}
	return out, nil
}
