package handlers

import (
	"net/http"
	"strconv"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"
	"food-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

// BaseDeliveryFee is charged on every order
const BaseDeliveryFee = 2.99

type PlaceOrderRequest struct {
	RestaurantID    uint                 `json:"restaurant_id" binding:"required"`
	DeliveryAddress string               `json:"delivery_address" binding:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	Notes           string               `json:"notes"`
	Items           []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order (customer only)
func PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, err.Error())
		return
	}

	paymentMethod := req.PaymentMethod
	switch paymentMethod {
	case "":
		paymentMethod = models.PaymentCash
	case models.PaymentCash, models.PaymentCard, models.PaymentOnline:
	default:
		failValidation(c, "Invalid payment method. Must be: CASH, CARD or ONLINE")
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.Where("active = ?", true).First(&restaurant, req.RestaurantID).Error; err != nil {
		failNotFound(c, "Restaurant not found")
		return
	}
	if !restaurant.IsOpen {
		failValidation(c, "Restaurant is currently closed")
		return
	}

	// Build order items with price/name snapshots
	var orderItems []models.OrderItem
	var subtotal float64
	for _, reqItem := range req.Items {
		var product models.Product
		if err := config.DB.First(&product, reqItem.ProductID).Error; err != nil {
			failValidation(c, "Product not found: "+strconv.FormatUint(uint64(reqItem.ProductID), 10))
			return
		}
		if product.RestaurantID != req.RestaurantID {
			failValidation(c, "Product does not belong to this restaurant")
			return
		}
		if !product.IsAvailable {
			failValidation(c, "Product '"+product.Name+"' is not available")
			return
		}
		subtotal += product.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  reqItem.Quantity,
			Price:     product.Price,
			Name:      product.Name,
		})
	}

	order := models.Order{
		CustomerID:      customerID,
		RestaurantID:    req.RestaurantID,
		Status:          models.StatusNew,
		Subtotal:        subtotal,
		DeliveryFee:     BaseDeliveryFee,
		TotalPrice:      subtotal + BaseDeliveryFee,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentPending,
		Items:           orderItems,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		failInternal(c, "Failed to place order")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"order": order}, "Order placed")
}

// GetMyOrders lists the caller's orders, newest first
func GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Restaurant").
		Where("customer_id = ?", customerID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)

	respondOK(c, http.StatusOK, gin.H{"count": len(orders), "orders": orders}, "")
}

// GetOrderDetail returns one of the caller's orders
func GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items.Product").Preload("Restaurant").
		First(&order, c.Param("id")).Error; err != nil {
		failNotFound(c, "Order not found")
		return
	}
	if order.CustomerID != customerID {
		failPermission(c, "This order does not belong to you")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": order}, "")
}

// CancelOrder lets the customer cancel while the order is still NEW
func CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		failNotFound(c, "Order not found")
		return
	}
	if order.CustomerID != customerID {
		failPermission(c, "This order does not belong to you")
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		failInternal(c, "Failed to cancel order")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order_id": order.ID, "status": models.StatusCancelled}, "Order cancelled")
}
