package services

import (
	"errors"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// ToggleVisited flips the caller's visited mark on a restaurant and returns
// the resulting state (true = now visited). Same transactional shape as
// ToggleBookmark.
func ToggleVisited(userID, restaurantID uint) (bool, error) {
	var visited bool
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireRestaurant(tx, restaurantID); err != nil {
			return err
		}

		var row models.Visited
		err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
			First(&row).Error
		switch {
		case err == nil:
			visited = false
			return tx.Delete(&row).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			visited = true
			return tx.Create(&models.Visited{UserID: userID, RestaurantID: restaurantID}).Error
		default:
			return err
		}
	})
	return visited, err
}

// ListVisitedRestaurants returns the restaurants the caller marked visited,
// most recent first.
func ListVisitedRestaurants(userID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := config.DB.
		Preload("Cuisines").
		Preload("Images").
		Joins("JOIN visited ON visited.restaurant_id = restaurants.id").
		Where("visited.user_id = ?", userID).
		Order("visited.created_at DESC").
		Find(&restaurants).Error
	return restaurants, err
}
