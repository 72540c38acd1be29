package handlers_test

import (
	"net/http"
	"testing"

	"food-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffPageEscapesDisplayName(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	// The page renders the name carried in the token claims
	admin.Name = `<script>alert(1)</script>`

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard", nil, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}
