package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/middleware"
	"farmdash/pkg/user/repository"
)

type UserCtrl struct{ repo repository.UserRepository }

func New(repo repository.UserRepository) *UserCtrl { return &UserCtrl{repo} }

type createReq struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	AuthID string `json:"auth_id"`
}

// Create is a bootstrap path invoked server-to-server after sign-up, so it
// takes the external auth id from the payload instead of a session.
func (h *UserCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.AuthID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "auth_id required"})
	}
	u := &entities.User{Name: req.Name, Email: req.Email, AuthID: req.AuthID}
	id, err := h.repo.CreateIdempotent(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"user_id": id})
}

func (h *UserCtrl) Me(c echo.Context) error {
	id, err := middleware.Require(c)
	if err != nil {
		return err
	}
	u, err := h.repo.FindByAuthID(id.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) GetByAuthID(c echo.Context) error {
	u, err := h.repo.FindByAuthID(c.Param("authId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, u)
}
