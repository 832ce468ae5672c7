package controllers

import (
	"net/http"

	"github.com/bhavani-b03/Restaurant-app/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serverError logs the underlying fault and answers with a generic message,
// never the internal detail.
func serverError(c *gin.Context, msg string, err error) {
	logger.Error(msg, zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
