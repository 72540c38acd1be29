package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smallest well-formed PNG signature followed by padding; enough for
// content sniffing to classify it as image/png.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

func doUpload(t *testing.T, r *gin.Engine, filename string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadStoresPNGUnderGeneratedName(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	manager := createUser(t, models.RoleRestaurator, "m@example.com", "123456", &restaurant.ID)

	w := doUpload(t, r, "menu.png", pngBytes, tokenFor(t, &manager))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Filename string `json:"filename"`
			URL      string `json:"url"`
			Type     string `json:"type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "image/png", env.Data.Type)
	assert.NotEqual(t, "menu.png", env.Data.Filename)
	assert.Equal(t, "/uploads/"+env.Data.Filename, env.Data.URL)

	stored, err := os.ReadFile(filepath.Join(config.C.UploadDir, env.Data.Filename))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestUploadRejectsNonImageContent(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	manager := createUser(t, models.RoleRestaurator, "m@example.com", "123456", &restaurant.ID)

	// Extension lies; sniffed content decides
	w := doUpload(t, r, "not-an-image.png", []byte("#!/bin/sh\nrm -rf /\n"), tokenFor(t, &manager))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsCustomers(t *testing.T) {
	r := setupServer(t)
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)

	w := doUpload(t, r, "menu.png", pngBytes, tokenFor(t, &customer))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
