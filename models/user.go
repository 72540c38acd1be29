package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleRestaurator UserRole = "RESTAURATOR"
	RoleCustomer    UserRole = "CUSTOMER"
)

type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string      `json:"-" gorm:"not null"`
	Role         UserRole    `json:"role" gorm:"not null;default:'CUSTOMER'"`
	Phone        string      `json:"phone"`
	RestaurantID *uint       `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Active       bool        `json:"active" gorm:"default:true"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
