package config

import (
	"fmt"
	"os"

	"github.com/bhavani-b03/Restaurant-app/logger"
	"github.com/bhavani-b03/Restaurant-app/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetEnv returns the value of key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", "postgres"),
		GetEnv("DB_NAME", "restaurant_app"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
	logger.Info("Database connection established")
}

// Migrate runs schema migrations for every model. Shared with the test
// setup, which runs it against SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Cuisine{},
		&models.Restaurant{},
		&models.Food{},
		&models.RestaurantImage{},
		&models.Review{},
		&models.Bookmark{},
		&models.Visited{},
	)
}
