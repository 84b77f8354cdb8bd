package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/livestock/repository"
	"farmdash/pkg/middleware"
)

type LivestockCtrl struct{ repo repository.LivestockRepository }

func New(repo repository.LivestockRepository) *LivestockCtrl { return &LivestockCtrl{repo} }

type createReq struct {
	FarmID          string  `json:"farm_id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	TrackingType    string  `json:"tracking_type"` // individual|group
	Quantity        *int    `json:"quantity"`
	TagID           *string `json:"tag_id"`
	AcquisitionDate string  `json:"acquisition_date"`
	HealthStatus    string  `json:"health_status"`
	Purpose         string  `json:"purpose"`
	OrganizationID  string  `json:"organization_id"`
}

func (h *LivestockCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	ad, err := time.Parse("2006-01-02", req.AcquisitionDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad acquisition_date"})
	}
	l := &entities.Livestock{
		FarmID:          req.FarmID,
		Name:            req.Name,
		Type:            req.Type,
		TrackingType:    entities.TrackingType(req.TrackingType),
		Quantity:        req.Quantity,
		TagID:           req.TagID,
		AcquisitionDate: ad,
		HealthStatus:    req.HealthStatus,
		Purpose:         req.Purpose,
		OrganizationID:  req.OrganizationID,
	}
	if err := l.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.repo.Create(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"livestock_id": l.LivestockID})
}

func (h *LivestockCtrl) Get(c echo.Context) error {
	l, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LivestockCtrl) ListByFarm(c echo.Context) error {
	out, err := h.repo.ListByFarm(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LivestockCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	TrackingType    *string `json:"tracking_type"`
	Quantity        *int    `json:"quantity"`
	TagID           *string `json:"tag_id"`
	AcquisitionDate *string `json:"acquisition_date"`
	HealthStatus    *string `json:"health_status"`
	Purpose         *string `json:"purpose"`
}

func (h *LivestockCtrl) Patch(c echo.Context) error {
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
	if req.Type != nil {
		upd["type"] = *req.Type
	}
	if req.TrackingType != nil {
		l := entities.Livestock{TrackingType: entities.TrackingType(*req.TrackingType)}
		if err := l.Validate(); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		upd["tracking_type"] = *req.TrackingType
	}
	if req.Quantity != nil {
		upd["quantity"] = *req.Quantity
	}
	if req.TagID != nil {
		upd["tag_id"] = *req.TagID
	}
	if req.AcquisitionDate != nil {
		d, err := time.Parse("2006-01-02", *req.AcquisitionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad acquisition_date"})
		}
		upd["acquisition_date"] = d
	}
	if req.HealthStatus != nil {
		upd["health_status"] = *req.HealthStatus
	}
	if req.Purpose != nil {
		upd["purpose"] = *req.Purpose
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *LivestockCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
