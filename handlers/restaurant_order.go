package handlers

import (
	"net/http"
	"time"

	"food-marketplace-api/config"
	"food-marketplace-api/models"
	"food-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders returns all orders for the managed restaurant
func GetRestaurantOrders(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").
		Where("restaurant_id = ?", restaurant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	// Dashboard summary grouped by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	respondOK(c, http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	}, "")
}

// GetRestaurantOrder returns one order of the managed restaurant
func GetRestaurantOrder(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items.Product").Preload("Customer").
		First(&order, c.Param("id")).Error; err != nil {
		failNotFound(c, "Order not found")
		return
	}
	if order.RestaurantID != restaurant.ID {
		failPermission(c, "This order does not belong to your restaurant")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order}, "")
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,orderstatus"`
}

// UpdateOrderStatus handles the restaurant's state transitions
func UpdateOrderStatus(c *gin.Context) {
	restaurant, ok := myRestaurant(c)
	if !ok {
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		failNotFound(c, "Order not found")
		return
	}
	if order.RestaurantID != restaurant.ID {
		failPermission(c, "This order does not belong to your restaurant")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "restaurator"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":           false,
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	update := map[string]interface{}{"status": req.Status}
	if req.Status == models.StatusCompleted {
		now := time.Now()
		update["completed_at"] = &now
		// Cash orders settle on handover
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
		"current_status":  req.Status,
	}, "Order status updated")
}
