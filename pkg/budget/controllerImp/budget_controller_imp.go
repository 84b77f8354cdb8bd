package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/budget/repository"
	"farmdash/pkg/budget/service"
	"farmdash/pkg/middleware"
)

type BudgetCtrl struct {
	repo repository.BudgetRepository
	svc  service.BudgetService
}

func New(repo repository.BudgetRepository, svc service.BudgetService) *BudgetCtrl {
	return &BudgetCtrl{repo: repo, svc: svc}
}

type createReq struct {
	OrganizationID string  `json:"organization_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	DateRequired   string  `json:"date_required"` // 2006-01-02
	Category       string  `json:"category"`
	RelatedKind    string  `json:"related_kind"`
	RelatedID      string  `json:"related_id"`
	IsRecurring    bool    `json:"is_recurring"`
	Recurrence     string  `json:"recurrence_interval"`
}

func (h *BudgetCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	dr, err := time.Parse("2006-01-02", req.DateRequired)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date_required"})
	}
	b := &entities.Budget{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		Amount:         req.Amount,
		DateRequired:   dr,
		Category:       entities.BudgetCategory(req.Category),
		RelatedKind:    entities.RelatedKind(req.RelatedKind),
		RelatedID:      req.RelatedID,
		IsRecurring:    req.IsRecurring,
		Recurrence:     entities.RecurrenceInterval(req.Recurrence),
	}
	if err := b.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.repo.Create(b); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"budget_id": b.BudgetID})
}

func (h *BudgetCtrl) Get(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	b, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BudgetCtrl) ListByOrganization(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BudgetCtrl) ListThisMonth(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	out, err := h.svc.ListThisMonth(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BudgetCtrl) ListNextMonth(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	out, err := h.svc.ListNextMonth(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Amount       *float64 `json:"amount"`
	DateRequired *string  `json:"date_required"`
	Category     *string  `json:"category"`
	RelatedKind  *string  `json:"related_kind"`
	RelatedID    *string  `json:"related_id"`
	IsRecurring  *bool    `json:"is_recurring"`
	Recurrence   *string  `json:"recurrence_interval"`
}

func (h *BudgetCtrl) Patch(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	upd := map[string]any{}
	if req.Name != nil {
		upd["name"] = *req.Name
	}
	if req.Description != nil {
		upd["description"] = *req.Description
	}
	if req.Amount != nil {
		upd["amount"] = *req.Amount
	}
	if req.DateRequired != nil {
		d, err := time.Parse("2006-01-02", *req.DateRequired)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date_required"})
		}
		upd["date_required"] = d
	}
	if req.Category != nil {
		if !entities.ValidBudgetCategory(entities.BudgetCategory(*req.Category)) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid budget category"})
		}
		upd["category"] = *req.Category
	}
	if req.RelatedKind != nil {
		kind := entities.RelatedKind(*req.RelatedKind)
		if kind != "" && !entities.ValidRelatedKind(kind, entities.RelatedCrop, entities.RelatedLivestock, entities.RelatedFarm) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid related kind"})
		}
		upd["related_kind"] = *req.RelatedKind
	}
	if req.RelatedID != nil {
		upd["related_id"] = *req.RelatedID
	}
	if req.IsRecurring != nil {
		upd["is_recurring"] = *req.IsRecurring
	}
	if req.Recurrence != nil {
		r := entities.RecurrenceInterval(*req.Recurrence)
		if r != "" && !entities.ValidRecurrence(r) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid recurrence interval"})
		}
		upd["recurrence"] = *req.Recurrence
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BudgetCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
