package controllers

import (
	"errors"
	"net/http"

	"github.com/bhavani-b03/Restaurant-app/middlewares"
	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

type ToggleInput struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
}

// POST /bookmarks/toggle
func ToggleBookmark(c *gin.Context) {
	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	bookmarked, err := services.ToggleBookmark(middlewares.CallerID(c), input.RestaurantID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		serverError(c, "failed to toggle bookmark", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}
