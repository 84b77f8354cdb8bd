package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	cropRepoImp "farmdash/pkg/crop/repositoryImp"
	"farmdash/pkg/middleware"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func call(t *testing.T, method, path, body string, h echo.HandlerFunc, paramValue string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramValue != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramValue)
	}
	middleware.SetIdentity(c, middleware.Identity{Subject: "auth_1"})
	require.NoError(t, h(c))
	return rec
}

func TestCreateRejectsMalformedDates(t *testing.T) {
	db := setupTestDB(t)
	h := New(cropRepoImp.New(db))

	rec := call(t, http.MethodPost, "/crops",
		`{"farm_id":"farm_1","name":"maize","planting_date":"yesterday","harvest_date":"2026-09-01","status":"growing","organization_id":"org_1"}`,
		h.Create, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, http.MethodPost, "/crops",
		`{"farm_id":"farm_1","name":"maize","planting_date":"2026-04-01","harvest_date":"01/09/2026","status":"growing","organization_id":"org_1"}`,
		h.Create, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&entities.Crop{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAcceptsWellFormedDates(t *testing.T) {
	db := setupTestDB(t)
	h := New(cropRepoImp.New(db))

	rec := call(t, http.MethodPost, "/crops",
		`{"farm_id":"farm_1","name":"maize","planting_date":"2026-04-01","harvest_date":"2026-09-01","status":"growing","organization_id":"org_1"}`,
		h.Create, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPatchRejectsMalformedDate(t *testing.T) {
	db := setupTestDB(t)
	repo := cropRepoImp.New(db)
	h := New(repo)

	cr := &entities.Crop{Name: "maize", Status: entities.CropGrowing, OrganizationID: "org_1"}
	require.NoError(t, repo.Create(cr))

	rec := call(t, http.MethodPatch, "/crops/"+cr.CropID, `{"harvest_date":"next month"}`, h.Patch, cr.CropID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	got, err := repo.FindByID(cr.CropID)
	require.NoError(t, err)
	assert.True(t, got.HarvestDate.IsZero())
}
