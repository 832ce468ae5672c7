package services

import (
	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"
	"github.com/bhavani-b03/Restaurant-app/utils"
)

// AddRestaurantImage uploads a base64 image to object storage and records the
// public URL against the restaurant.
func AddRestaurantImage(restaurantID uint, base64Data string) (*models.RestaurantImage, error) {
	if err := requireRestaurant(config.DB, restaurantID); err != nil {
		return nil, err
	}

	url, err := utils.UploadBase64ImageToS3(base64Data, "restaurant-images")
	if err != nil {
		return nil, err
	}

	image := models.RestaurantImage{
		RestaurantID: restaurantID,
		URL:          url,
	}
	if err := config.DB.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
