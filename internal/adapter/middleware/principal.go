package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the resolved user id lives on the echo
// context.
const principalContextKey = "principal"

var rePrincipal = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// Principal resolves the Ax-User-Id header into a request-scoped
// identity. A missing header yields an empty principal; the idempotency
// layer is what makes the header mandatory on mutating methods.
func Principal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get("Ax-User-Id"))
			if userID != "" && !rePrincipal.MatchString(userID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid Ax-User-Id"})
			}
			c.Set(principalContextKey, userID)
			return next(c)
		}
	}
}

// PrincipalFrom returns the user id resolved by Principal, or "".
func PrincipalFrom(c echo.Context) string {
	if v, ok := c.Get(principalContextKey).(string); ok {
		return v
	}
	return ""
}
