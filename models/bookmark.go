package models

import "time"

// Bookmark marks a restaurant as saved by a user. Row existence is the state,
// so there is no soft delete here: a toggle off removes the row for real and
// the (user, restaurant) unique index stays reusable.
type Bookmark struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_restaurant" json:"restaurant_id"`
}

// Visited marks a restaurant as visited by a user.
type Visited struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_visited_user_restaurant" json:"user_id"`
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_visited_user_restaurant" json:"restaurant_id"`
}

func (Visited) TableName() string {
	return "visited"
}
