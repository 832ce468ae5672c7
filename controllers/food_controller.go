package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

// GET /restaurants/:id/foods
func ListFoods(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	foods, err := services.ListFoods(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		serverError(c, "failed to list foods", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
