package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-marketplace-api/auth"
	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"
	"food-marketplace-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupServer wires a full router against a fresh in-memory database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	config.JWTSecret = []byte("handlers-test-secret")
	config.C.UploadDir = t.TempDir()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, role models.UserRole, email, password string, restaurantID *uint) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		RestaurantID: restaurantID,
		Active:       true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createRestaurant(t *testing.T, name string) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{Name: name, Address: "1 Test St", IsOpen: true, Active: true}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	return restaurant
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.Issue(user, config.JWTSecret)
	require.NoError(t, err)
	return token
}

// doJSON performs a request with an optional JSON body and auth cookie.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func configDBDeactivate(userID uint) error {
	return config.DB.Model(&models.User{}).Where("id = ?", userID).Update("active", false).Error
}

func findUserByEmail(email string, out *models.User) error {
	return config.DB.Where("email = ?", email).First(out).Error
}

type envelope struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}
