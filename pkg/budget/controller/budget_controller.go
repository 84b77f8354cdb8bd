package controller

import "github.com/labstack/echo/v4"

type BudgetController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListByOrganization(c echo.Context) error
	ListThisMonth(c echo.Context) error
	ListNextMonth(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
}
