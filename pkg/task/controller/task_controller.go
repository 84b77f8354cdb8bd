package controller

import "github.com/labstack/echo/v4"

type TaskController interface {
	Create(c echo.Context) error
	Get(c echo.Context) error
	ListByFarm(c echo.Context) error
	ListByOrganization(c echo.Context) error
	ListPending(c echo.Context) error
	Patch(c echo.Context) error
	PatchStatus(c echo.Context) error
	PatchDueDate(c echo.Context) error
	Delete(c echo.Context) error
}
