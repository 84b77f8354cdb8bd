package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/labor/repository"
	"farmdash/pkg/middleware"
)

type LaborCtrl struct{ repo repository.LaborRepository }

func New(repo repository.LaborRepository) *LaborCtrl { return &LaborCtrl{repo} }

type createReq struct {
	FarmID         string `json:"farm_id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	ContactInfo    string `json:"contact_info"`
	OrganizationID string `json:"organization_id"`
}

func (h *LaborCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l := &entities.Labor{
		FarmID:         req.FarmID,
		Name:           req.Name,
		Role:           req.Role,
		ContactInfo:    req.ContactInfo,
		OrganizationID: req.OrganizationID,
	}
	if err := h.repo.Create(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"labor_id": l.LaborID})
}

func (h *LaborCtrl) Get(c echo.Context) error {
	l, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LaborCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	ContactInfo *string `json:"contact_info"`
}

func (h *LaborCtrl) Patch(c echo.Context) error {
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
	if req.Role != nil {
		upd["role"] = *req.Role
	}
	if req.ContactInfo != nil {
		upd["contact_info"] = *req.ContactInfo
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *LaborCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
