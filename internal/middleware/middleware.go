package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"motofix-admin/internal/config"
	"motofix-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextAdminKey = "admin"

func extractClaims(cfg config.Config, c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(cfg, parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAdmin gates every data endpoint: signature, expiry and role are all
// checked before the wrapped handler runs.
func RequireAdmin(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(cfg, c)
			if err != nil {
				return err
			}
			if claims.Role != service.AdminRole {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			c.Set(ContextAdminKey, claims)
			return next(c)
		}
	}
}
