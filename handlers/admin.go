package handlers

import (
	"errors"
	"net/http"
	"time"

	"food-marketplace-api/auth"
	"food-marketplace-api/config"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ── Restaurants ─────────────────────────────────────────────────────────────

// AdminListRestaurants returns every restaurant, including deactivated ones
func AdminListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB
	if active := c.Query("active"); active == "true" {
		query = query.Where("active = ?", true)
	} else if active == "false" {
		query = query.Where("active = ?", false)
	}
	query.Find(&restaurants)
	respondOK(c, http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants}, "")
}

type AdminCreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Cuisine     string `json:"cuisine"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// AdminCreateRestaurant registers a new restaurant on the platform
func AdminCreateRestaurant(c *gin.Context) {
	var req AdminCreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsOpen:      true,
		Active:      true,
	}
	if err := config.DB.Create(&restaurant).Error; err != nil {
		failInternal(c, "Failed to create restaurant")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"restaurant": restaurant}, "Restaurant created")
}

// AdminUpdateRestaurant updates any restaurant
func AdminUpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{
		"name": true, "cuisine": true, "address": true, "phone": true,
		"description": true, "image_url": true, "is_open": true, "active": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&restaurant).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update restaurant")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant": restaurant}, "Restaurant updated")
}

// AdminDeleteRestaurant soft-deactivates a restaurant. Nothing is ever
// hard-deleted so order history stays intact.
func AdminDeleteRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	if err := config.DB.Model(&restaurant).Updates(map[string]interface{}{
		"active":  false,
		"is_open": false,
	}).Error; err != nil {
		failInternal(c, "Failed to deactivate restaurant")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant_id": restaurant.ID}, "Restaurant deactivated")
}

// ── Users ───────────────────────────────────────────────────────────────────

// AdminListUsers returns all users, filterable by role and active flag
func AdminListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if active := c.Query("active"); active == "true" {
		query = query.Where("active = ?", true)
	} else if active == "false" {
		query = query.Where("active = ?", false)
	}
	query.Find(&users)
	respondOK(c, http.StatusOK, gin.H{"count": len(users), "users": users}, "")
}

type AdminCreateUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,role"`
	Phone        string `json:"phone"`
	RestaurantID *uint  `json:"restaurant_id"`
}

// AdminCreateUser creates an account with any role; restaurant managers
// can be assigned their restaurant at creation time.
func AdminCreateUser(c *gin.Context) {
	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	role, _ := auth.ParseRole(req.Role)

	if req.RestaurantID != nil {
		if role != models.RoleRestaurator {
			failValidation(c, "Only RESTAURATOR accounts can be assigned a restaurant")
			return
		}
		var restaurant models.Restaurant
		if err := config.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			failNotFound(c, "Restaurant not found")
			return
		}
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		failConflict(c, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		failInternal(c, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		RestaurantID: req.RestaurantID,
		Active:       true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			failConflict(c, "Email already registered")
			return
		}
		failInternal(c, "Failed to create user")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"user": user}, "User created")
}

// AdminUpdateUser updates name, phone and active flag of any account
func AdminUpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{"name": true, "phone": true, "active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&user).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update user")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "User updated")
}

// AdminDeactivateUser soft-deactivates an account
func AdminDeactivateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}
	if err := config.DB.Model(&user).Update("active", false).Error; err != nil {
		failInternal(c, "Failed to deactivate user")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user_id": user.ID}, "User deactivated")
}

type AssignRestaurantRequest struct {
	RestaurantID *uint `json:"restaurant_id"`
}

// AdminAssignRestaurant reassigns a manager's restaurant. A null
// restaurant_id detaches the manager. The user must hold re-issued
// credentials before the change shows in their token.
func AdminAssignRestaurant(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		failNotFound(c, "User not found")
		return
	}
	if user.Role != models.RoleRestaurator {
		failValidation(c, "Only RESTAURATOR accounts can be assigned a restaurant")
		return
	}

	var req AssignRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.RestaurantID != nil {
		var restaurant models.Restaurant
		if err := config.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			failNotFound(c, "Restaurant not found")
			return
		}
	}

	if err := config.DB.Model(&user).Update("restaurant_id", req.RestaurantID).Error; err != nil {
		failInternal(c, "Failed to reassign restaurant")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user": user}, "Restaurant reassigned")
}

// ── Orders ──────────────────────────────────────────────────────────────────

// AdminListOrders returns all orders with full detail
func AdminListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").Preload("Restaurant")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			totalRevenue += o.TotalPrice
		}
	}

	respondOK(c, http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	}, "")
}

type AdminForceStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
	Reason string             `json:"reason"`
}

// AdminForceOrderStatus lets the admin override any order state,
// bypassing the transition table (emergency use)
func AdminForceOrderStatus(c *gin.Context) {
	var req AdminForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		failNotFound(c, "Order not found")
		return
	}

	prevStatus := order.Status
	update := map[string]interface{}{"status": req.Status}
	if req.Status == models.StatusCompleted {
		if order.CompletedAt == nil {
			now := time.Now()
			update["completed_at"] = &now
		}
		// Cash orders settle on handover, same as the restaurant path
		if order.PaymentMethod == models.PaymentCash {
			update["payment_status"] = models.PaymentPaid
		}
	}
	if err := config.DB.Model(&order).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update order status")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"new_status":      req.Status,
		"reason":          req.Reason,
	}, "Order status force-updated by admin")
}
