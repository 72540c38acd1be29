package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
)

// myRestaurant resolves the caller's assigned restaurant. Writes the
// error response itself when the caller has no usable assignment.
func myRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil || claims.RestaurantID == nil {
		failNotFound(c, "No restaurant assigned to your account")
		return nil, false
	}
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, *claims.RestaurantID).Error; err != nil {
		failNotFound(c, "No restaurant assigned to your account")
		return nil, false
	}
	return &restaurant, true
}

// ── Restaurant profile ──────────────────────────────────────────────────────

// GetMyRestaurant fetches the restaurant managed by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}
	config.DB.Preload("Categories").Preload("Products").First(restaurant, restaurant.ID)
	respondOK(c, http.StatusOK, gin.H{"restaurant": restaurant}, "")
}

// UpdateMyRestaurant updates restaurant details
func UpdateMyRestaurant(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{
		"name": true, "cuisine": true, "address": true, "phone": true,
		"description": true, "image_url": true, "is_open": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(restaurant).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update restaurant")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant": restaurant}, "Restaurant updated")
}

// ── Category management ─────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ListMyCategories returns all categories of the caller's restaurant
func ListMyCategories(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}
	var categories []models.Category
	config.DB.Where("restaurant_id = ?", restaurant.ID).Order("sort_order asc").Find(&categories)
	respondOK(c, http.StatusOK, gin.H{"count": len(categories), "categories": categories}, "")
}

// CreateCategory adds a category to the caller's restaurant
func CreateCategory(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	category := models.Category{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		SortOrder:    req.SortOrder,
		Active:       true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		failInternal(c, "Failed to create category")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"category": category}, "Category created")
}

// UpdateCategory updates a category owned by the caller's restaurant
func UpdateCategory(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		failNotFound(c, "Category not found")
		return
	}
	if category.RestaurantID != restaurant.ID {
		failPermission(c, "This category does not belong to your restaurant")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "sort_order": true, "active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&category).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update category")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"category": category}, "Category updated")
}

// DeleteCategory removes a category; its products are detached, not deleted
func DeleteCategory(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		failNotFound(c, "Category not found")
		return
	}
	if category.RestaurantID != restaurant.ID {
		failPermission(c, "This category does not belong to your restaurant")
		return
	}

	config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).
		Update("category_id", nil)
	config.DB.Delete(&category)
	respondOK(c, http.StatusOK, gin.H{}, "Category deleted")
}

// ── Product management ──────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  *uint   `json:"category_id"`
	ImageURL    string  `json:"image_url"`
	IsVeg       bool    `json:"is_veg"`
}

// ListMyProducts returns all products of the caller's restaurant
func ListMyProducts(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}
	var products []models.Product
	query := config.DB.Where("restaurant_id = ?", restaurant.ID)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query.Find(&products)
	respondOK(c, http.StatusOK, gin.H{"count": len(products), "products": products}, "")
}

// CreateProduct adds a product to the caller's restaurant
func CreateProduct(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.Where("id = ? AND restaurant_id = ?", *req.CategoryID, restaurant.ID).
			First(&category).Error; err != nil {
			failValidation(c, "Category does not belong to your restaurant")
			return
		}
	}

	product := models.Product{
		RestaurantID: restaurant.ID,
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsVeg:        req.IsVeg,
		IsAvailable:  true,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		failInternal(c, "Failed to create product")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"product": product}, "Product created")
}

// UpdateProduct updates a product (only by the owning restaurant)
func UpdateProduct(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		failNotFound(c, "Product not found")
		return
	}
	if product.RestaurantID != restaurant.ID {
		failPermission(c, "This product does not belong to your restaurant")
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "category_id": true,
		"image_url": true, "is_available": true, "is_veg": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&product).Updates(update).Error; err != nil {
		failInternal(c, "Failed to update product")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"product": product}, "Product updated")
}

// DeleteProduct removes a product
func DeleteProduct(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		failNotFound(c, "Product not found")
		return
	}
	if product.RestaurantID != restaurant.ID {
		failPermission(c, "This product does not belong to your restaurant")
		return
	}
	config.DB.Delete(&product)
	respondOK(c, http.StatusOK, gin.H{}, "Product deleted")
}

// ── Stats ───────────────────────────────────────────────────────────────────

// GetRestaurantStats returns an order/revenue summary for the dashboard
func GetRestaurantStats(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var orders []models.Order
	config.DB.Where("restaurant_id = ?", restaurant.ID).Find(&orders)

	summary := map[string]int{}
	var revenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			revenue += o.TotalPrice
		}
	}

	var productCount int64
	config.DB.Model(&models.Product{}).Where("restaurant_id = ?", restaurant.ID).Count(&productCount)

	respondOK(c, http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"rating":        restaurant.Rating,
		"order_summary": summary,
		"total_orders":  len(orders),
		"revenue":       revenue,
		"product_count": productCount,
	}, "")
}
