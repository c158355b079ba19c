package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/pkg/jwt"
	"github.com/Devendra616/collectEmpData-sub000/pkg/redis"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// Context keys set by JWTAuth.
const (
	ContextEmployeeID = "employee_id"
	ContextSapID      = "sap_id"
	ContextIsAdmin    = "is_admin"
	ContextTokenJTI   = "token_jti"
	ContextTokenExp   = "token_exp"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>. Revoked tokens are rejected via the
// Redis blacklist; with rdb nil the blacklist check is skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token invalid or expired")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "invalid token type")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextSapID, claims.SapID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Set(ContextTokenJTI, claims.ID)
		c.Set(ContextTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

// AdminAuth allows only admin accounts through. Must run after JWTAuth.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(ContextIsAdmin)
		if !exists {
			response.Unauthorized(c, 10002, "not authenticated")
			c.Abort()
			return
		}
		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Forbidden(c, 10003, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
