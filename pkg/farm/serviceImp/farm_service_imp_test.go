package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	"farmdash/pkg/farm/service"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, authID string) *entities.User {
	u := &entities.User{UserID: "user_" + authID, Name: "Owner", Email: authID + "@example.com", AuthID: authID, FarmIDs: []string{}}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCreateFromOrganizationIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "auth_1")
	svc := New(db)

	in := service.BootstrapInput{
		OrganizationID:   "org_1",
		OrganizationName: "Green Acres",
		OrgSlug:          "green-acres",
		CreatedByAuthID:  "auth_1",
	}

	first, err := svc.CreateFromOrganization(in)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.CreateFromOrganization(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var farms []entities.Farm
	require.NoError(t, db.Where("organization_id = ?", "org_1").Find(&farms).Error)
	require.Len(t, farms, 1)
	assert.Equal(t, "Green Acres", farms[0].Name)
	assert.Equal(t, "green-acres", farms[0].OrgSlug)
	assert.Equal(t, "Not specified", farms[0].Location)
	assert.Equal(t, 0.0, farms[0].Size)
}

func TestCreateFromOrganizationLinksOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "auth_1")
	svc := New(db)

	farmID, err := svc.CreateFromOrganization(service.BootstrapInput{
		OrganizationID: "org_1", OrganizationName: "Green Acres", CreatedByAuthID: "auth_1",
	})
	require.NoError(t, err)

	var u entities.User
	require.NoError(t, db.Where("user_id = ?", owner.UserID).First(&u).Error)
	assert.Equal(t, []string{farmID}, u.FarmIDs)

	// The idempotent retry must not append a second time.
	_, err = svc.CreateFromOrganization(service.BootstrapInput{
		OrganizationID: "org_1", OrganizationName: "Green Acres", CreatedByAuthID: "auth_1",
	})
	require.NoError(t, err)
	require.NoError(t, db.Where("user_id = ?", owner.UserID).First(&u).Error)
	assert.Len(t, u.FarmIDs, 1)
}

func TestCreateFromOrganizationUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	_, err := svc.CreateFromOrganization(service.BootstrapInput{
		OrganizationID: "org_1", OrganizationName: "Green Acres", CreatedByAuthID: "ghost",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.Farm{}).Count(&count).Error)
	assert.Zero(t, count, "no farm should be written when the owner lookup fails")
}

func TestCreateAppendsToOwnerFarms(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "auth_1")
	svc := New(db)

	f1, err := svc.Create("auth_1", &entities.Farm{Name: "North", Location: "Hill", Size: 12})
	require.NoError(t, err)
	f2, err := svc.Create("auth_1", &entities.Farm{Name: "South", Location: "Valley", Size: 30})
	require.NoError(t, err)

	var u entities.User
	require.NoError(t, db.Where("user_id = ?", owner.UserID).First(&u).Error)
	assert.Equal(t, []string{f1, f2}, u.FarmIDs)

	farms, err := svc.ListByOwner("auth_1")
	require.NoError(t, err)
	require.Len(t, farms, 2)
	assert.Equal(t, "North", farms[0].Name)
}

func TestListByOwnerUnknownCallerIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := New(db)

	farms, err := svc.ListByOwner("nobody")
	require.NoError(t, err)
	assert.Empty(t, farms)
}
