package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/crop/repository"
	"farmdash/pkg/middleware"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo} }

type createReq struct {
	FarmID         string  `json:"farm_id"`
	Name           string  `json:"name"`
	Variety        string  `json:"variety"`
	PlantingDate   string  `json:"planting_date"` // 2006-01-02
	HarvestDate    string  `json:"harvest_date"`
	AreaPlanted    float64 `json:"area_planted"`
	Status         string  `json:"status"`
	OrganizationID string  `json:"organization_id"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	pd, err := time.Parse("2006-01-02", req.PlantingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad planting_date"})
	}
	hd, err := time.Parse("2006-01-02", req.HarvestDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad harvest_date"})
	}
	cr := &entities.Crop{
		FarmID:         req.FarmID,
		Name:           req.Name,
		Variety:        req.Variety,
		PlantingDate:   pd,
		HarvestDate:    hd,
		AreaPlanted:    req.AreaPlanted,
		Status:         entities.CropStatus(req.Status),
		OrganizationID: req.OrganizationID,
	}
	if err := cr.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.repo.Create(cr); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"crop_id": cr.CropID})
}

func (h *CropCtrl) Get(c echo.Context) error {
	cr, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) ListByFarm(c echo.Context) error {
	out, err := h.repo.ListByFarm(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Name         *string  `json:"name"`
	Variety      *string  `json:"variety"`
	PlantingDate *string  `json:"planting_date"`
	HarvestDate  *string  `json:"harvest_date"`
	AreaPlanted  *float64 `json:"area_planted"`
	Status       *string  `json:"status"`
}

func (h *CropCtrl) Patch(c echo.Context) error {
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
	if req.Variety != nil {
		upd["variety"] = *req.Variety
	}
	if req.PlantingDate != nil {
		d, err := time.Parse("2006-01-02", *req.PlantingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad planting_date"})
		}
		upd["planting_date"] = d
	}
	if req.HarvestDate != nil {
		d, err := time.Parse("2006-01-02", *req.HarvestDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad harvest_date"})
		}
		upd["harvest_date"] = d
	}
	if req.AreaPlanted != nil {
		upd["area_planted"] = *req.AreaPlanted
	}
	if req.Status != nil {
		cr := entities.Crop{Status: entities.CropStatus(*req.Status)}
		if err := cr.Validate(); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		upd["status"] = *req.Status
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
