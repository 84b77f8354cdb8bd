package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/middleware"
	"farmdash/pkg/report"
	"farmdash/pkg/transaction/service"
)

type ReportCtrl struct{ txns service.Service }

func New(txns service.Service) *ReportCtrl { return &ReportCtrl{txns} }

func (h *ReportCtrl) TransactionsXLSX(c echo.Context) error {
	if _, err := middleware.Require(c); err != nil {
		return err
	}
	orgID := c.Param("orgId")
	txns, err := h.txns.ListByOrganization(orgID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := report.BuildTransactionsWorkbook(txns)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="transactions-%s.xlsx"`, orgID))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
