package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdash/database"
	"farmdash/entities"
	budgetRepoImp "farmdash/pkg/budget/repositoryImp"
	budgetSvcImp "farmdash/pkg/budget/serviceImp"
	"farmdash/pkg/middleware"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newCtrl(db *gorm.DB) *BudgetCtrl {
	repo := budgetRepoImp.New(db)
	return New(repo, budgetSvcImp.New(repo))
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

func seedBudget(t *testing.T, db *gorm.DB) *entities.Budget {
	b := &entities.Budget{
		BudgetID: "b1", Name: "seed order", Amount: 100,
		DateRequired:   time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC),
		Category:       entities.BudgetOperational,
		OrganizationID: "org_1",
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestPatchRejectsUnknownRecurrenceAndRelatedKind(t *testing.T) {
	db := setupTestDB(t)
	h := newCtrl(db)
	b := seedBudget(t, db)

	rec := call(t, http.MethodPatch, "/budgets/b1",
		`{"is_recurring":true,"recurrence_interval":"daily","related_kind":"user"}`, h.Patch, b.BudgetID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got entities.Budget
	require.NoError(t, db.Where("budget_id = ?", b.BudgetID).First(&got).Error)
	assert.Empty(t, got.Recurrence)
	assert.Empty(t, got.RelatedKind)
	assert.False(t, got.IsRecurring)
}

func TestPatchRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	h := newCtrl(db)
	b := seedBudget(t, db)

	rec := call(t, http.MethodPatch, "/budgets/b1", `{"category":"misc"}`, h.Patch, b.BudgetID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchAcceptsValidUnions(t *testing.T) {
	db := setupTestDB(t)
	h := newCtrl(db)
	b := seedBudget(t, db)

	rec := call(t, http.MethodPatch, "/budgets/b1",
		`{"is_recurring":true,"recurrence_interval":"monthly","related_kind":"farm","related_id":"farm_1"}`,
		h.Patch, b.BudgetID)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entities.Budget
	require.NoError(t, db.Where("budget_id = ?", b.BudgetID).First(&got).Error)
	assert.Equal(t, entities.RecurMonthly, got.Recurrence)
	assert.Equal(t, entities.RelatedFarm, got.RelatedKind)
	assert.True(t, got.IsRecurring)
}

func TestPatchRejectsBadDate(t *testing.T) {
	db := setupTestDB(t)
	h := newCtrl(db)
	b := seedBudget(t, db)

	rec := call(t, http.MethodPatch, "/budgets/b1", `{"date_required":"15-05-2026"}`, h.Patch, b.BudgetID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsBadDate(t *testing.T) {
	db := setupTestDB(t)
	h := newCtrl(db)

	rec := call(t, http.MethodPost, "/budgets",
		`{"name":"b","amount":1,"date_required":"soon","category":"other","organization_id":"org_1"}`,
		h.Create, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&entities.Budget{}).Count(&count).Error)
	assert.Zero(t, count)
}
