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

func TestCreateRejectsInvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	err := repo.Create(&entities.Task{Title: "weed plot", Status: "paused", OrganizationID: "org_1"})
	assert.Error(t, err)
}

func TestCreateRejectsUnknownRelatedKind(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	err := repo.Create(&entities.Task{
		Title: "vaccinate", Status: entities.TaskPending,
		RelatedKind: "tractor", RelatedID: "x", OrganizationID: "org_1",
	})
	assert.Error(t, err)
}

func TestUpdatePartialPreservesOtherFields(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	due := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	task := &entities.Task{
		FarmID: "farm_1", Title: "irrigate", Description: "north plot",
		DueDate: due, Status: entities.TaskPending, OrganizationID: "org_1",
	}
	require.NoError(t, repo.Create(task))

	require.NoError(t, repo.UpdatePartial(task.TaskID, map[string]any{"status": entities.TaskInProgress}))

	got, err := repo.FindByID(task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskInProgress, got.Status)
	assert.Equal(t, "irrigate", got.Title)
	assert.Equal(t, "north plot", got.Description)
	assert.Equal(t, due.Unix(), got.DueDate.Unix())
}

func TestListPendingFiltersStatusAndOrg(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(&entities.Task{Title: "a", Status: entities.TaskPending, OrganizationID: "org_1"}))
	require.NoError(t, repo.Create(&entities.Task{Title: "b", Status: entities.TaskCancelled, OrganizationID: "org_1"}))
	require.NoError(t, repo.Create(&entities.Task{Title: "c", Status: entities.TaskPending, OrganizationID: "org_2"}))

	got, err := repo.ListPending("org_1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}

func TestListByAssignee(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.Create(&entities.Task{Title: "a", Status: entities.TaskPending, AssignedTo: "lab_1", OrganizationID: "org_1"}))
	require.NoError(t, repo.Create(&entities.Task{Title: "b", Status: entities.TaskPending, AssignedTo: "lab_2", OrganizationID: "org_1"}))

	got, err := repo.ListByAssignee("lab_1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)
}
