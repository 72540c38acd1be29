package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/models"
	"food-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all active restaurants (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB.Where("active = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if open := c.Query("open"); open == "true" {
		query = query.Where("is_open = ?", true)
	}

	query.Order("rating desc").Find(&restaurants)
	respondOK(c, http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	}, "")
}

// GetRestaurant returns a single restaurant with its categories
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Categories").
		Where("active = ?", true).First(&restaurant, c.Param("id")).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant": restaurant}, "")
}

// ListRestaurantCategories returns the active categories of a restaurant
func ListRestaurantCategories(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.Where("active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	var categories []models.Category
	config.DB.Where("restaurant_id = ? AND active = ?", restaurantID, true).
		Order("sort_order asc").Find(&categories)

	respondOK(c, http.StatusOK, gin.H{
		"count":      len(categories),
		"categories": categories,
	}, "")
}

// ListRestaurantProducts returns the menu of a restaurant (public)
func ListRestaurantProducts(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.Where("active = ?", true).First(&restaurant, restaurantID).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	var products []models.Product
	query := config.DB.Where("restaurant_id = ?", restaurantID)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	if isVeg := c.Query("is_veg"); isVeg == "true" {
		query = query.Where("is_veg = ?", true)
	}
	query.Find(&products)

	respondOK(c, http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(products),
		"products":   products,
	}, "")
}

// GetProduct returns a single product
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Category").First(&product, c.Param("id")).Error; err != nil {
		failNotFound(c, "Product not found")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": product}, "")
}

// GetOrderLifecycle returns the order state machine for informational purposes
func GetOrderLifecycle(c *gin.Context) {
	var transitions []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{
			"from": t.From, "to": t.To, "actor": t.Actor,
		})
	}
	respondOK(c, http.StatusOK, gin.H{
		"transitions":     transitions,
		"terminal_states": []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
	}, "")
}

// ListProductReviews returns all reviews for a product (public)
func ListProductReviews(c *gin.Context) {
	productID := c.Param("id")
	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		failNotFound(c, "Product not found")
		return
	}

	var reviews []models.Review
	config.DB.Preload("User").Where("product_id = ?", productID).
		Order("created_at desc").Find(&reviews)

	respondOK(c, http.StatusOK, gin.H{
		"rating":  product.Rating,
		"count":   len(reviews),
		"reviews": reviews,
	}, "")
}

// ListRestaurantReviews returns all reviews for a restaurant (public)
func ListRestaurantReviews(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}

	var reviews []models.Review
	config.DB.Preload("User").Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").Find(&reviews)

	respondOK(c, http.StatusOK, gin.H{
		"rating":  restaurant.Rating,
		"count":   len(reviews),
		"reviews": reviews,
	}, "")
}
