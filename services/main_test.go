package services

import (
	"fmt"
	"testing"

	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory SQLite database. The
// named shared-cache DSN keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func createUser(t *testing.T, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "not-a-real-hash",
		FullName: "Test User",
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createRestaurant(t *testing.T, name string, opts ...func(*models.Restaurant)) *models.Restaurant {
	t.Helper()

	restaurant := &models.Restaurant{
		Name:        name,
		City:        "Bangalore",
		Address:     "1 Test Street",
		CostForTwo:  400,
		DietType:    models.DietVeg,
		OpeningTime: "09:00",
		ClosingTime: "22:00",
	}
	for _, opt := range opts {
		opt(restaurant)
	}
	require.NoError(t, config.DB.Create(restaurant).Error)
	return restaurant
}

func withCost(cost int) func(*models.Restaurant) {
	return func(r *models.Restaurant) { r.CostForTwo = cost }
}

func withDiet(diet models.DietType) func(*models.Restaurant) {
	return func(r *models.Restaurant) { r.DietType = diet }
}

func withRating(rating float64) func(*models.Restaurant) {
	return func(r *models.Restaurant) { r.AverageRating = rating }
}

func withSpotlight() func(*models.Restaurant) {
	return func(r *models.Restaurant) { r.IsSpotlight = true }
}

func withCuisines(cuisines ...models.Cuisine) func(*models.Restaurant) {
	return func(r *models.Restaurant) { r.Cuisines = cuisines }
}

func createCuisine(t *testing.T, name string) models.Cuisine {
	t.Helper()

	cuisine := models.Cuisine{Name: name}
	require.NoError(t, config.DB.Create(&cuisine).Error)
	return cuisine
}

func createReview(t *testing.T, userID, restaurantID uint, rating int) *models.Review {
	t.Helper()

	review := &models.Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      "seeded",
	}
	require.NoError(t, config.DB.Create(review).Error)
	return review
}
