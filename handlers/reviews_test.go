package handlers_test

import (
	"net/http"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRecomputesProductAverage(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	product := models.Product{RestaurantID: restaurant.ID, Name: "Burger", Price: 9.99, IsAvailable: true}
	require.NoError(t, config.DB.Create(&product).Error)

	first := createUser(t, models.RoleCustomer, "first@example.com", "123456", nil)
	second := createUser(t, models.RoleCustomer, "second@example.com", "123456", nil)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"product_id": product.ID, "rating": 2, "comment": "meh",
	}, tokenFor(t, &first))
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Product
	require.NoError(t, config.DB.First(&stored, product.ID).Error)
	assert.InDelta(t, 2.0, stored.Rating, 1e-9)

	// A second review rated 4 moves the stored average to 3.0
	w = doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"product_id": product.ID, "rating": 4, "comment": "better",
	}, tokenFor(t, &second))
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, config.DB.First(&stored, product.ID).Error)
	assert.InDelta(t, 3.0, stored.Rating, 1e-9)
}

func TestCreateReviewRecomputesRestaurantAverage(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"restaurant_id": restaurant.ID, "rating": 5,
	}, tokenFor(t, &customer))
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Restaurant
	require.NoError(t, config.DB.First(&stored, restaurant.ID).Error)
	assert.InDelta(t, 5.0, stored.Rating, 1e-9)
}

func TestCreateReviewRequiresExactlyOneTarget(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	product := models.Product{RestaurantID: restaurant.ID, Name: "Burger", Price: 9.99}
	require.NoError(t, config.DB.Create(&product).Error)
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)

	// Neither target
	w := doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"rating": 3,
	}, tokenFor(t, &customer))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Both targets
	w = doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"product_id": product.ID, "restaurant_id": restaurant.ID, "rating": 3,
	}, tokenFor(t, &customer))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReviewValidatesRatingRange(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)

	for _, rating := range []int{0, 6, -1} {
		w := doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
			"restaurant_id": restaurant.ID, "rating": rating,
		}, tokenFor(t, &customer))
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
	}
}

func TestCreateReviewCustomerOnly(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	manager := createUser(t, models.RoleRestaurator, "m@example.com", "123456", &restaurant.ID)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"restaurant_id": restaurant.ID, "rating": 5,
	}, tokenFor(t, &manager))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
