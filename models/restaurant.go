package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Cuisine     string     `json:"cuisine"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	IsOpen      bool       `json:"is_open" gorm:"default:true"`
	Active      bool       `json:"active" gorm:"default:true"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	Categories  []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Products    []Product  `json:"products,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	SortOrder    int       `json:"sort_order" gorm:"default:0"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   *uint     `json:"category_id"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	IsVeg        bool      `json:"is_veg" gorm:"default:false"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
