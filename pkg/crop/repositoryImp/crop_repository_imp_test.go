package repositoryImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateAssignsID(t *testing.T) {
	repo := New(setupTestDB(t))

	c := &entities.Crop{
		FarmID: "farm_1", Name: "maize", Variety: "obatanpa",
		PlantingDate: time.Now(), HarvestDate: time.Now().AddDate(0, 3, 0),
		AreaPlanted: 1.5, Status: entities.CropGrowing, OrganizationID: "org_1",
	}
	require.NoError(t, repo.Create(c))
	assert.NotEmpty(t, c.CropID)

	got, err := repo.FindByID(c.CropID)
	require.NoError(t, err)
	assert.Equal(t, "maize", got.Name)
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	repo := New(setupTestDB(t))

	err := repo.Create(&entities.Crop{Name: "maize", Status: "sprouting", OrganizationID: "org_1"})
	assert.Error(t, err)
}

func TestListScopesByFarmAndOrganization(t *testing.T) {
	repo := New(setupTestDB(t))

	mk := func(name, farm, org string) {
		require.NoError(t, repo.Create(&entities.Crop{
			Name: name, FarmID: farm, Status: entities.CropPlanned, OrganizationID: org,
		}))
	}
	mk("maize", "farm_1", "org_1")
	mk("beans", "farm_2", "org_1")
	mk("rice", "farm_3", "org_2")

	byFarm, err := repo.ListByFarm("farm_1")
	require.NoError(t, err)
	require.Len(t, byFarm, 1)
	assert.Equal(t, "maize", byFarm[0].Name)

	byOrg, err := repo.ListByOrganization("org_1")
	require.NoError(t, err)
	assert.Len(t, byOrg, 2)
}

func TestUpdatePartialAndDelete(t *testing.T) {
	repo := New(setupTestDB(t))

	c := &entities.Crop{Name: "maize", Status: entities.CropGrowing, OrganizationID: "org_1"}
	require.NoError(t, repo.Create(c))

	require.NoError(t, repo.UpdatePartial(c.CropID, map[string]any{"status": entities.CropHarvested}))
	got, err := repo.FindByID(c.CropID)
	require.NoError(t, err)
	assert.Equal(t, entities.CropHarvested, got.Status)
	assert.Equal(t, "maize", got.Name)

	require.NoError(t, repo.Delete(c.CropID))
	_, err = repo.FindByID(c.CropID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
