package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirrdn/acounting-api/utils"
)

// AuthMiddleware parses the Bearer token when present and places the claims
// into the request context. Route protection itself is done by RequireRoles;
// public routes (login, health) stay reachable without a token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		if auth == "" {
			c.Next()
			return
		}

		bearer := "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		auth = auth[len(bearer):]

		validate, err := utils.JwtValidate(auth)
		if err != nil || !validate.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		claim, _ := validate.Claims.(*utils.JwtCustomClaim)

		ctx := utils.SetUserIdInContext(c.Request.Context(), claim.ID)
		ctx = utils.SetUsernameInContext(ctx, claim.Username)
		ctx = utils.SetRoleInContext(ctx, claim.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles gates a route group on the authenticated user's role.
// No token -> 401, wrong role -> 403. An empty role list only requires
// authentication.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role, ok := utils.GetRoleFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		if len(allowed) > 0 && !allowed[role] {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
