package models

import "time"

// Review is a user's rating of a restaurant. One review per (user, restaurant);
// hard-deleted so a user can review again after removing theirs.
type Review struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_review_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_review_user_restaurant" json:"restaurant_id"`
	Rating       int       `gorm:"not null" json:"rating"` // 1-5
	Comment      string    `gorm:"type:text" json:"comment"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
