package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// RequireRole admits only callers whose role claim is in the allowed
// set. Rejections surface as domain.ErrForbidden so the central error
// handler renders the usual 403 envelope.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ClaimRole).(string)
			if !allowed[role] {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
