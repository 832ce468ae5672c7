package controllers

import (
	"net/http"

	"github.com/bhavani-b03/Restaurant-app/middlewares"
	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

// GET /user/profile
func GetProfile(c *gin.Context) {
	user, err := services.FindUserByID(middlewares.CallerID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GET /user/bookmarks
func ListBookmarks(c *gin.Context) {
	restaurants, err := services.ListBookmarkedRestaurants(middlewares.CallerID(c))
	if err != nil {
		serverError(c, "failed to list bookmarks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GET /user/visited
func ListVisited(c *gin.Context) {
	restaurants, err := services.ListVisitedRestaurants(middlewares.CallerID(c))
	if err != nil {
		serverError(c, "failed to list visited restaurants", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}
