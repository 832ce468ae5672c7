package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhavani-b03/Restaurant-app/services"

	"github.com/gin-gonic/gin"
)

type UploadImageInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /restaurants/:id/images
func UploadRestaurantImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var input UploadImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 is required"})
		return
	}

	image, err := services.AddRestaurantImage(uint(id), input.ImageBase64)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		serverError(c, "Upload failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}
