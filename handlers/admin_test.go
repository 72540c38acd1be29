package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminReassignRestaurant(t *testing.T) {
	r := setupServer(t)
	first := createRestaurant(t, "First Kitchen")
	second := createRestaurant(t, "Second Kitchen")
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	manager := createUser(t, models.RoleRestaurator, "m@example.com", "123456", &first.ID)

	path := "/api/admin/users/" + strconv.FormatUint(uint64(manager.ID), 10) + "/restaurant"
	w := doJSON(t, r, http.MethodPut, path,
		map[string]interface{}{"restaurant_id": second.ID}, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.User
	require.NoError(t, config.DB.First(&stored, manager.ID).Error)
	require.NotNil(t, stored.RestaurantID)
	assert.Equal(t, second.ID, *stored.RestaurantID)

	// Detach with null
	w = doJSON(t, r, http.MethodPut, path,
		map[string]interface{}{"restaurant_id": nil}, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.First(&stored, manager.ID).Error)
	assert.Nil(t, stored.RestaurantID)
}

func TestAdminReassignRejectsNonManagers(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)

	path := "/api/admin/users/" + strconv.FormatUint(uint64(customer.ID), 10) + "/restaurant"
	w := doJSON(t, r, http.MethodPut, path,
		map[string]interface{}{"restaurant_id": restaurant.ID}, tokenFor(t, &admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminCreateUserValidatesRole(t *testing.T) {
	r := setupServer(t)
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", map[string]interface{}{
		"name": "Driver Dan", "email": "dan@example.com", "password": "123456", "role": "DRIVER",
	}, tokenFor(t, &admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/users", map[string]interface{}{
		"name": "Manager Max", "email": "max@example.com", "password": "123456", "role": "RESTAURATOR",
	}, tokenFor(t, &admin))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestAdminDeleteIsSoftDeactivate(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	victim := createUser(t, models.RoleRestaurator, "m@example.com", "123456", &restaurant.ID)

	w := doJSON(t, r, http.MethodDelete,
		"/api/admin/users/"+strconv.FormatUint(uint64(victim.ID), 10), nil, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, config.DB.First(&stored, victim.ID).Error)
	assert.False(t, stored.Active)

	w = doJSON(t, r, http.MethodDelete,
		"/api/admin/restaurants/"+strconv.FormatUint(uint64(restaurant.ID), 10), nil, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code)

	var storedRestaurant models.Restaurant
	require.NoError(t, config.DB.First(&storedRestaurant, restaurant.ID).Error)
	assert.False(t, storedRestaurant.Active)

	// Deactivated restaurants disappear from public browsing
	w = doJSON(t, r, http.MethodGet,
		"/api/restaurants/"+strconv.FormatUint(uint64(restaurant.ID), 10), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func seedOrder(t *testing.T, customerID, restaurantID uint, method models.PaymentMethod) models.Order {
	t.Helper()
	order := models.Order{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		Status:          models.StatusNew,
		DeliveryAddress: "1 Test St",
		PaymentMethod:   method,
		PaymentStatus:   models.PaymentPending,
		TotalPrice:      12.99,
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func TestAdminForceStatusRejectsUnknownValues(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)
	order := seedOrder(t, customer.ID, restaurant.ID, models.PaymentCash)

	path := "/api/admin/orders/" + strconv.FormatUint(uint64(order.ID), 10) + "/status"
	w := doJSON(t, r, http.MethodPut, path,
		map[string]string{"status": "BOGUS"}, tokenFor(t, &admin))
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, order.ID).Error)
	assert.Equal(t, models.StatusNew, stored.Status)
}

func TestAdminForceStatusBypassesTableAndSettlesCash(t *testing.T) {
	r := setupServer(t)
	restaurant := createRestaurant(t, "Testaurant")
	admin := createUser(t, models.RoleAdmin, "admin@example.com", "123456", nil)
	customer := createUser(t, models.RoleCustomer, "c@example.com", "123456", nil)
	order := seedOrder(t, customer.ID, restaurant.ID, models.PaymentCash)

	// NEW straight to COMPLETED skips the transition table entirely
	path := "/api/admin/orders/" + strconv.FormatUint(uint64(order.ID), 10) + "/status"
	w := doJSON(t, r, http.MethodPut, path,
		map[string]string{"status": "COMPLETED", "reason": "support escalation"}, tokenFor(t, &admin))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Order
	require.NoError(t, config.DB.First(&stored, order.ID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
	// Cash settles on completion regardless of who completed the order
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}
