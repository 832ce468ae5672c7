package models

import "gorm.io/gorm"

// DietType classifies a restaurant or food item.
type DietType int

const (
	DietVeg DietType = iota + 1
	DietNonVeg
	DietVegan
)

type Cuisine struct {
	gorm.Model
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Restaurants []Restaurant `gorm:"many2many:restaurant_cuisines;" json:"-"`
}

type Restaurant struct {
	gorm.Model
	Name       string   `gorm:"uniqueIndex;not null" json:"name"`
	City       string   `json:"city"`
	Address    string   `json:"address"`
	CostForTwo int      `gorm:"default:0" json:"cost_for_two"`
	DietType   DietType `gorm:"default:1" json:"diet_type"`
	// Derived from the review set; written only by the rating recompute.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	OpeningTime   string  `json:"opening_time"` // "HH:MM"
	ClosingTime   string  `json:"closing_time"`
	IsSpotlight   bool    `gorm:"default:false" json:"is_spotlight"`

	Cuisines []Cuisine         `gorm:"many2many:restaurant_cuisines;" json:"cuisines,omitempty"`
	Menu     []Food            `gorm:"foreignKey:RestaurantID" json:"menu,omitempty"`
	Images   []RestaurantImage `gorm:"foreignKey:RestaurantID" json:"images,omitempty"`
	Reviews  []Review          `gorm:"foreignKey:RestaurantID" json:"-"`
}

type RestaurantImage struct {
	gorm.Model
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"`
	URL          string `gorm:"not null" json:"url"`
}
