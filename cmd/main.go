package main

import (
	"github.com/bhavani-b03/Restaurant-app/config"
	"github.com/bhavani-b03/Restaurant-app/logger"
	"github.com/bhavani-b03/Restaurant-app/routes"
	"github.com/bhavani-b03/Restaurant-app/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
