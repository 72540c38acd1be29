package models

import "time"

// Review targets exactly one of a product or a restaurant.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProductID    *uint     `json:"product_id" gorm:"index"`
	RestaurantID *uint     `json:"restaurant_id" gorm:"index"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
