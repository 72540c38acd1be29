package middleware

import (
	"net/http"
	"strings"

	"food-marketplace-api/auth"
	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the session cookie set at login
const AuthCookieName = "auth-token"

const identityKey = "identity"

// AuthRequired validates the session token and injects the verified
// claims into the request context. The cookie is the primary channel;
// a Bearer header is accepted for API clients.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(AuthCookieName)
		if err != nil || tokenStr == "" {
			if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.Verify(tokenStr, config.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

// PermissionRequired enforces a fine-grained permission on the caller
func PermissionRequired(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			c.Abort()
			return
		}
		if !auth.HasPermission(claims, permission) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied. Missing permission: " + permission,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetClaims extracts the verified identity from context, nil if absent
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.UserRole {
	if claims := GetClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}
