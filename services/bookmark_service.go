package services

import (
	"errors"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// ToggleBookmark flips the caller's bookmark on a restaurant and returns the
// resulting state (true = now bookmarked). The existence check and the write
// run in one transaction; the (user, restaurant) unique index is the backstop
// against concurrent duplicate toggles.
func ToggleBookmark(userID, restaurantID uint) (bool, error) {
	var bookmarked bool
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireRestaurant(tx, restaurantID); err != nil {
			return err
		}

		var bookmark models.Bookmark
		err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
			First(&bookmark).Error
		switch {
		case err == nil:
			bookmarked = false
			return tx.Delete(&bookmark).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmarked = true
			return tx.Create(&models.Bookmark{UserID: userID, RestaurantID: restaurantID}).Error
		default:
			return err
		}
	})
	return bookmarked, err
}

// ListBookmarkedRestaurants returns the caller's bookmarked restaurants,
// newest bookmark first.
func ListBookmarkedRestaurants(userID uint) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := config.DB.
		Preload("Cuisines").
		Preload("Images").
		Joins("JOIN bookmarks ON bookmarks.restaurant_id = restaurants.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&restaurants).Error
	return restaurants, err
}

// requireRestaurant resolves a restaurant id inside tx, translating a missing
// row to ErrNotFound.
func requireRestaurant(tx *gorm.DB, restaurantID uint) error {
	var restaurant models.Restaurant
	if err := tx.Select("id").First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
