package middleware

import (
	"net/http"
	"strings"

	"autohub/models"
	"autohub/services/user"
	"autohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// BearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// SessionAuthMiddleware resolves the bearer token to a session principal.
// When optional is true, anonymous requests pass through without a principal.
func SessionAuthMiddleware(users user.UserService, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing bearer token")
			return
		}

		sess, err := users.CurrentSession(c.Request.Context(), token)
		if err != nil {
			utils.GetLogger().Error("Session lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Authentication failed", "")
			return
		}
		if sess == nil {
			if optional {
				c.Next()
				return
			}
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "session expired or signed out")
			return
		}

		c.Set(principalKey, models.PrincipalFromSession(*sess))
		c.Next()
	}
}

// RequireRole admits only principals holding one of roles. It must run after SessionAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Access denied", "requires role "+joinRoles(roles))
	}
}

func joinRoles(roles []models.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, " or ")
}

// PrincipalFrom returns the request's principal, or nil for anonymous callers.
func PrincipalFrom(c *gin.Context) *models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(*models.Principal); ok {
			return p
		}
	}
	return nil
}
