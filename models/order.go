package models

import (
	"errors"
	"time"
)

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusNew        OrderStatus = "NEW"
	StatusAccepted   OrderStatus = "ACCEPTED"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ErrUnknownOrderStatus is returned for status values outside the closed enum
var ErrUnknownOrderStatus = errors.New("unknown order status")

// ParseOrderStatus validates a raw status string against the closed enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case StatusNew, StatusAccepted, StatusPreparing, StatusDelivering,
		StatusCompleted, StatusCancelled:
		return status, nil
	}
	return "", ErrUnknownOrderStatus
}

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// PaymentStatus tracks settlement of an order
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	CustomerID      uint          `json:"customer_id" gorm:"not null;index"`
	Customer        User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID    uint          `json:"restaurant_id" gorm:"not null;index"`
	Restaurant      Restaurant    `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Status          OrderStatus   `json:"status" gorm:"not null;default:'NEW'"`
	Subtotal        float64       `json:"subtotal"`
	DeliveryFee     float64       `json:"delivery_fee"`
	TotalPrice      float64       `json:"total_price"`
	DeliveryAddress string        `json:"delivery_address" gorm:"not null"`
	Notes           string        `json:"notes"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"not null;default:'CASH'"`
	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"not null;default:'PENDING'"`
	Items           []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CompletedAt     *time.Time    `json:"completed_at"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	Name      string  `json:"name"`                  // snapshot name
}
