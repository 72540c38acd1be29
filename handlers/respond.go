package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every API response uses the envelope {success, data|error, message?}.
// Status codes follow the outcome class: 400 validation, 401
// unauthenticated, 403 unauthorized, 404 missing, 409 conflict,
// 422 invalid transition, 500 unexpected.

func respondOK(c *gin.Context, status int, data gin.H, message string) {
	body := gin.H{"success": true, "data": data}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

func respondErr(c *gin.Context, status int, errMsg string) {
	c.JSON(status, gin.H{"success": false, "error": errMsg})
}

func failValidation(c *gin.Context, msg string) { respondErr(c, http.StatusBadRequest, msg) }
func failAuth(c *gin.Context, msg string)       { respondErr(c, http.StatusUnauthorized, msg) }
func failPermission(c *gin.Context, msg string) { respondErr(c, http.StatusForbidden, msg) }
func failNotFound(c *gin.Context, msg string)   { respondErr(c, http.StatusNotFound, msg) }
func failConflict(c *gin.Context, msg string)   { respondErr(c, http.StatusConflict, msg) }
func failInternal(c *gin.Context, msg string)   { respondErr(c, http.StatusInternalServerError, msg) }
