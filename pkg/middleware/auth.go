package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"jardin/entities"
	"jardin/pkg/auth"
)

// JWT reads a Bearer token and puts the caller's identity on the context
// under "uid", "role" and "can_manage".
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == "" || raw == header {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := auth.ParseToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			c.Set("uid", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("can_manage", claims.CanManage)
			return next(c)
		}
	}
}

func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get("role").(entities.Role); role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}

// CanManage gates task and routine writes: admins always pass, other users
// need the grantable flag.
func CanManage() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(entities.Role)
			canManage, _ := c.Get("can_manage").(bool)
			if role != entities.RoleAdmin && !canManage {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}
