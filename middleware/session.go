package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"food-marketplace-api/auth"
	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// pageRoles maps browser path prefixes to the role they require.
var pageRoles = []struct {
	Prefix string
	Role   models.UserRole
}{
	{Prefix: "/admin", Role: models.RoleAdmin},
	{Prefix: "/restaurant", Role: models.RoleRestaurator},
}

// PageGuard protects browser navigation paths. It never denies with a
// raw status: every failure resolves to a login redirect. This is UX
// routing only; API routes authorize through AuthRequired and friends.
func PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		var required models.UserRole
		matched := false
		for _, p := range pageRoles {
			if path == p.Prefix || strings.HasPrefix(path, p.Prefix+"/") {
				required = p.Role
				matched = true
				break
			}
		}
		if !matched {
			c.Next()
			return
		}

		tokenStr, err := c.Cookie(AuthCookieName)
		if err != nil || tokenStr == "" {
			redirectToLogin(c, "/login?redirect="+url.QueryEscape(path))
			return
		}

		claims, err := auth.Verify(tokenStr, config.JWTSecret)
		if err != nil {
			redirectToLogin(c, "/login?redirect="+url.QueryEscape(path)+"&error=session-expired")
			return
		}

		if claims.Role != required {
			redirectToLogin(c, "/login?error=unauthorized")
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
