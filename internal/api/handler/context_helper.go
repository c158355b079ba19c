package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Devendra616/collectEmpData-sub000/internal/api/middleware"
	"github.com/Devendra616/collectEmpData-sub000/pkg/response"
)

// MustGetEmployeeID extracts employee_id injected by the JWT middleware.
// On failure it writes a 401 and returns false; the caller should return.
func MustGetEmployeeID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextEmployeeID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetTokenRevocation extracts the token ID and expiry needed to revoke the
// presented access token. ok=false means the context carries no token.
func GetTokenRevocation(c *gin.Context) (jti string, expiresAt time.Time, ok bool) {
	v, exists := c.Get(middleware.ContextTokenJTI)
	if !exists {
		return "", time.Time{}, false
	}
	jti, sok := v.(string)
	if !sok || jti == "" {
		return "", time.Time{}, false
	}
	if e, exists := c.Get(middleware.ContextTokenExp); exists {
		if t, tok := e.(time.Time); tok {
			expiresAt = t
		}
	}
	return jti, expiresAt, true
}
