package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/api/middleware"
	"github.com/retours-express/returns-platform/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - client role requires a non-empty email; without it the JWT is
//     structurally valid but operationally unusable, so reject with 401.
func ctxClaims(c echo.Context) (role, email string, err error) {
	role, _ = c.Get(middleware.ClaimRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get(middleware.ClaimEmail).(string)
	if role == domain.RoleClient && email == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}

	return role, email, nil
}
