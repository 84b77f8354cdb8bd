package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/farm/repository"
	"farmdash/pkg/farm/service"
	"farmdash/pkg/farm/serviceImp"
	"farmdash/pkg/middleware"
)

type FarmCtrl struct {
	repo repository.FarmRepository
	svc  service.FarmService
}

func New(repo repository.FarmRepository, svc service.FarmService) *FarmCtrl {
	return &FarmCtrl{repo: repo, svc: svc}
}

type createReq struct {
	Name           string  `json:"name"`
	Location       string  `json:"location"`
	Size           float64 `json:"size"`
	OrganizationID string  `json:"organization_id"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	id, err := middleware.Require(c)
	if err != nil {
		return err
	}
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Farm{Name: req.Name, Location: req.Location, Size: req.Size, OrganizationID: req.OrganizationID}
	fid, err := h.svc.Create(id.Subject, f)
	if err != nil {
		if errors.Is(err, serviceImp.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"farm_id": fid})
}

func (h *FarmCtrl) Get(c echo.Context) error {
	f, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) ListMine(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, []entities.Farm{})
	}
	out, err := h.svc.ListByOwner(id.Subject)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) ListByOrganization(c echo.Context) error {
	out, err := h.repo.ListByOrganization(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) ListAll(c echo.Context) error {
	out, err := h.repo.ListAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Name     *string  `json:"name"`
	Location *string  `json:"location"`
	Size     *float64 `json:"size"`
	OrgSlug  *string  `json:"org_slug"`
}

func (h *FarmCtrl) Patch(c echo.Context) error {
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
	if req.Location != nil {
		upd["location"] = *req.Location
	}
	if req.Size != nil {
		upd["size"] = *req.Size
	}
	if req.OrgSlug != nil {
		upd["org_slug"] = *req.OrgSlug
	}
	if err := h.repo.UpdatePartial(c.Param("id"), upd); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
