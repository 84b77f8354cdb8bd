package controller

import "github.com/labstack/echo/v4"

type FarmController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListMine(c echo.Context) error
	ListByOrganization(c echo.Context) error
	ListAll(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
}
