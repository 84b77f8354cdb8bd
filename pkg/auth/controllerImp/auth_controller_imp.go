package controllerImp

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"farmdash/pkg/auth/controller"
	"farmdash/pkg/middleware"
)

type authCtrl struct {
	secret  string
	enabled bool
}

func NewAuthController(secret string, devLoginEnabled bool) controller.AuthController {
	return &authCtrl{secret: secret, enabled: devLoginEnabled}
}

// DevLogin mints a local session token. Only for development; in production
// tokens come from the external identity provider.
func (h *authCtrl) DevLogin(c echo.Context) error {
	if !h.enabled {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dev login disabled"})
	}
	sub := c.QueryParam("sub")
	if sub == "" {
		sub = "user_dev_default"
	}
	email := c.QueryParam("email")
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"sub": sub, "token": tok})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"authenticated": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"authenticated": true, "subject": id.Subject, "email": id.Email})
}
