package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/metrics/service"
	"farmdash/pkg/middleware"
)

type MetricsCtrl struct{ svc service.MetricsService }

func New(svc service.MetricsService) *MetricsCtrl { return &MetricsCtrl{svc} }

func (h *MetricsCtrl) Get(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	snap, err := h.svc.Snapshot(c.Param("orgId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}
