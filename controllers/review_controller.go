package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhavani-b03/Restaurant-app/middlewares"
	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// POST /restaurants/:id/reviews
func AddReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	result, err := services.AddOrUpdateReview(middlewares.CallerID(c), uint(id), input.Rating, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
		case errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			serverError(c, "failed to save review", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// DELETE /reviews/:id
func DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	result, err := services.DeleteReview(middlewares.CallerID(c), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only delete your own review"})
		default:
			serverError(c, "failed to delete review", err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
