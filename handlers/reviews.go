package handlers

import (
	"net/http"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	ProductID    *uint  `json:"product_id"`
	RestaurantID *uint  `json:"restaurant_id"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// CreateReview stores a review for exactly one target (product or
// restaurant) and recomputes the target's average rating from the full
// review set inside the same transaction.
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}
	if (req.ProductID == nil) == (req.RestaurantID == nil) {
		failValidation(c, "Exactly one of product_id or restaurant_id is required")
		return
	}

	if req.ProductID != nil {
		var product models.Product
		if err := config.DB.First(&product, *req.ProductID).Error; err != nil {
			failNotFound(c, "Product not found")
			return
		}
	} else {
		var restaurant models.Restaurant
		if err := config.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			failNotFound(c, "Restaurant not found")
			return
		}
	}

	review := models.Review{
		UserID:       userID,
		ProductID:    req.ProductID,
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	var newRating float64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		var err error
		newRating, err = recomputeRating(tx, &review)
		return err
	})
	if err != nil {
		failInternal(c, "Failed to create review")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"review": review, "new_rating": newRating}, "Review created")
}

// recomputeRating re-aggregates the full rating set for the review's
// target and persists the arithmetic mean. Deliberately not incremental.
func recomputeRating(tx *gorm.DB, review *models.Review) (float64, error) {
	var avg float64
	if review.ProductID != nil {
		if err := tx.Model(&models.Review{}).
			Where("product_id = ?", *review.ProductID).
			Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error; err != nil {
			return 0, err
		}
		return avg, tx.Model(&models.Product{}).
			Where("id = ?", *review.ProductID).
			Update("rating", avg).Error
	}
	if err := tx.Model(&models.Review{}).
		Where("restaurant_id = ?", *review.RestaurantID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, tx.Model(&models.Restaurant{}).
		Where("id = ?", *review.RestaurantID).
		Update("rating", avg).Error
}
