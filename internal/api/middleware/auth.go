package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which Auth stores the verified identity claims.
// RequireRole and the handlers read them back with these names.
const (
	ClaimEmail = "email"
	ClaimName  = "name"
	ClaimRole  = "role"
)

// Auth verifies the Bearer token and stores the identity claims on the
// request context.
func Auth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimEmail, claims[ClaimEmail])
			c.Set(ClaimName, claims[ClaimName])
			c.Set(ClaimRole, claims[ClaimRole])

			return next(c)
		}
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return token, nil
}
