package models

import "gorm.io/gorm"

// Food is one menu entry of a restaurant.
type Food struct {
	gorm.Model
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Name         string    `gorm:"not null" json:"name"`
	Price        float64   `json:"price"`
	DietType     DietType  `gorm:"default:1" json:"diet_type"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	Cuisines     []Cuisine `gorm:"many2many:food_cuisines;" json:"cuisines,omitempty"`
}
