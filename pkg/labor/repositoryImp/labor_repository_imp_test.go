package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	taskRepoImp "farmdash/pkg/task/repositoryImp"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateAndListByOrganization(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(&entities.Labor{Name: "Kofi", Role: "hand", OrganizationID: "org_1"}))
	require.NoError(t, repo.Create(&entities.Labor{Name: "Ama", Role: "manager", OrganizationID: "org_2"}))

	got, err := repo.ListByOrganization("org_1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kofi", got[0].Name)
	assert.NotEmpty(t, got[0].LaborID)
}

func TestDeleteLeavesTaskAssigneeDangling(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)
	tasks := taskRepoImp.New(db)

	worker := &entities.Labor{Name: "Kofi", Role: "hand", OrganizationID: "org_1"}
	require.NoError(t, repo.Create(worker))
	require.NoError(t, tasks.Create(&entities.Task{
		Title: "fix fence", Status: entities.TaskPending,
		AssignedTo: worker.LaborID, OrganizationID: "org_1",
	}))

	require.NoError(t, repo.Delete(worker.LaborID))

	_, err := repo.FindByID(worker.LaborID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The task keeps its stale assignee reference.
	got, err := tasks.ListByAssignee(worker.LaborID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
