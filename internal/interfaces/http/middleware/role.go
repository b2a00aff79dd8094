package middleware

import (
	"net/http"

	"github.com/AnamulHaqueN/employee-monitoring-saas/internal/domain/identity"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleConfig holds configuration for role middleware
type RoleConfig struct {
	Logger *zap.Logger
}

// RequireOwner creates middleware that only lets company owners through
func RequireOwner() gin.HandlerFunc {
	return RequireOwnerWithConfig(RoleConfig{})
}

// RequireOwnerWithConfig creates owner-only middleware with custom config
func RequireOwnerWithConfig(cfg RoleConfig) gin.HandlerFunc {
	return RequireRoleWithConfig(cfg, string(identity.RoleOwner))
}

// RequireRole creates middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return RequireRoleWithConfig(RoleConfig{}, roles...)
}

// RequireRoleWithConfig creates role middleware with custom config
func RequireRoleWithConfig(cfg RoleConfig, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			handleRoleDenied(c, cfg, roles, "No authentication claims found")
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		handleRoleDenied(c, cfg, roles, "User lacks required role")
	}
}

func handleRoleDenied(c *gin.Context, cfg RoleConfig, roles []string, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Role check failed",
			zap.String("user_id", GetJWTUserID(c)),
			zap.Strings("required_roles", roles),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "FORBIDDEN",
			"message": "You do not have permission to perform this action",
		},
	})
}
