package services

import (
	"errors"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"gorm.io/gorm"
)

// ReviewResult carries a review write's outcome together with the
// restaurant's freshly recomputed aggregate.
type ReviewResult struct {
	Review        *models.Review `json:"review,omitempty"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int64          `json:"review_count"`
}

// AddOrUpdateReview upserts the caller's review of a restaurant. Rating is
// validated before any write. The upsert and the average recompute commit
// together or not at all.
func AddOrUpdateReview(userID, restaurantID uint, rating int, comment string) (*ReviewResult, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	result := &ReviewResult{}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireRestaurant(tx, restaurantID); err != nil {
			return err
		}

		var review models.Review
		err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
			First(&review).Error
		switch {
		case err == nil:
			review.Rating = rating
			review.Comment = comment
			if err := tx.Save(&review).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = models.Review{
				UserID:       userID,
				RestaurantID: restaurantID,
				Rating:       rating,
				Comment:      comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		default:
			return err
		}

		avg, err := RecomputeAverageRating(tx, restaurantID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("restaurant_id = ?", restaurantID).
			Count(&count).Error; err != nil {
			return err
		}

		result.Review = &review
		result.AverageRating = avg
		result.ReviewCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteReview removes a review the caller owns and recomputes the
// restaurant's average against the smaller review set. ErrForbidden when the
// caller is not the author (deliberately not ErrNotFound: the review exists).
func DeleteReview(userID, reviewID uint) (*ReviewResult, error) {
	result := &ReviewResult{}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if review.UserID != userID {
			return ErrForbidden
		}

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}

		avg, err := RecomputeAverageRating(tx, review.RestaurantID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("restaurant_id = ?", review.RestaurantID).
			Count(&count).Error; err != nil {
			return err
		}

		result.AverageRating = avg
		result.ReviewCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
