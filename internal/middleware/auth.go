package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/counsel-scheduler/internal/auth"
	"github.com/BruksfildServices01/counsel-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.ErrUnauthenticated("missing_token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Respond(c, httperr.ErrUnauthenticated("invalid_token"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles. It must
// run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, c.GetString(ContextUserRole)) {
			httperr.Respond(c, httperr.ErrUnauthorized("forbidden_role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Caller returns the authenticated user id and role.
func Caller(c *gin.Context) (uint, string) {
	return c.GetUint(ContextUserID), c.GetString(ContextUserRole)
}
