package controller

import "github.com/labstack/echo/v4"

type LaborController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListByOrganization(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
}
