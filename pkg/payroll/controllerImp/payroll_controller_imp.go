package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/middleware"
	"farmdash/pkg/payroll/repository"
)

type PayrollCtrl struct{ repo repository.PayrollRepository }

func New(repo repository.PayrollRepository) *PayrollCtrl { return &PayrollCtrl{repo} }

type createReq struct {
	FarmID         string   `json:"farm_id"`
	LaborID        string   `json:"labor_id"`
	TransactionID  string   `json:"transaction_id"`
	PayPeriodStart string   `json:"pay_period_start"`
	PayPeriodEnd   string   `json:"pay_period_end"`
	HoursWorked    *float64 `json:"hours_worked"`
	OrganizationID string   `json:"organization_id"`
}

func (h *PayrollCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ps, err := time.Parse("2006-01-02", req.PayPeriodStart)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad pay_period_start"})
	}
	pe, err := time.Parse("2006-01-02", req.PayPeriodEnd)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad pay_period_end"})
	}
	p := &entities.Payroll{
		FarmID:         req.FarmID,
		LaborID:        req.LaborID,
		TransactionID:  req.TransactionID,
		PayPeriodStart: ps,
		PayPeriodEnd:   pe,
		HoursWorked:    req.HoursWorked,
		OrganizationID: req.OrganizationID,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"payroll_id": p.PayrollID})
}

func (h *PayrollCtrl) Get(c echo.Context) error {
	p, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PayrollCtrl) ListByLabor(c echo.Context) error {
	out, err := h.repo.ListByLabor(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PayrollCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PayrollCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
