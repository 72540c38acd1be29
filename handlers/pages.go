package handlers

import (
	"html"
	"net/http"

	"food-marketplace-api/middleware"

	"github.com/gin-gonic/gin"
)

// Minimal page stubs for the browser dashboards. The real front-end is
// served separately; these exist so the page guard has routes to cover.

// LoginPage renders the login form placeholder
func LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<!DOCTYPE html><html><body><h1>Staff Login</h1></body></html>`))
}

// StaffPage renders a placeholder for guarded dashboard paths
func StaffPage(c *gin.Context) {
	claims := middleware.GetClaims(c)
	name := ""
	if claims != nil {
		name = html.EscapeString(claims.Name)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<!DOCTYPE html><html><body><h1>Dashboard</h1><p>`+name+`</p></body></html>`))
}
