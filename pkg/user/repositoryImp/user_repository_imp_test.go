package repositoryImp

import (
	"testing"

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

func TestCreateIdempotentByAuthID(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	first, err := repo.CreateIdempotent(&entities.User{Name: "Ana", Email: "ana@example.com", AuthID: "auth_1"})
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := repo.CreateIdempotent(&entities.User{Name: "Ana again", Email: "other@example.com", AuthID: "auth_1"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Where("auth_id = ?", "auth_1").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The original record wins; the second payload is discarded.
	u, err := repo.FindByAuthID("auth_1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.NotNil(t, u.FarmIDs)
}

func TestFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := repo.FindByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
