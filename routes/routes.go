package routes

import (
	"github.com/bhavani-b03/Restaurant-app/controllers"
	"github.com/bhavani-b03/Restaurant-app/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/password/forgot", controllers.ForgotPassword)
		auth.POST("/password/reset", controllers.ResetPassword)
	}

	// Public reads; a valid token upgrades them with bookmark/visited flags
	restaurants := r.Group("/restaurants")
	restaurants.Use(middlewares.OptionalAuthMiddleware())
	{
		restaurants.GET("", controllers.ListRestaurants)
		restaurants.GET("/:id", controllers.GetRestaurant)
		restaurants.GET("/:id/foods", controllers.ListFoods)
	}

	// Login-required writes and profile reads
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/auth/password/change", controllers.ChangePassword)

		protected.POST("/bookmarks/toggle", controllers.ToggleBookmark)
		protected.POST("/visited/toggle", controllers.ToggleVisited)

		protected.POST("/restaurants/:id/reviews", controllers.AddReview)
		protected.DELETE("/reviews/:id", controllers.DeleteReview)
		protected.POST("/restaurants/:id/images", controllers.UploadRestaurantImage)

		protected.GET("/user/profile", controllers.GetProfile)
		protected.GET("/user/bookmarks", controllers.ListBookmarks)
		protected.GET("/user/visited", controllers.ListVisited)
	}

	return r
}
