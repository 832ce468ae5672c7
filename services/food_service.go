package services

import (
	"errors"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// ListFoods returns a restaurant's menu. ErrNotFound when the restaurant does
// not exist, so an empty menu and a bad id are distinguishable.
func ListFoods(restaurantID uint) ([]models.Food, error) {
	var restaurant models.Restaurant
	if err := config.DB.Select("id").First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var foods []models.Food
	err := config.DB.
		Preload("Cuisines").
		Where("restaurant_id = ?", restaurantID).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}
