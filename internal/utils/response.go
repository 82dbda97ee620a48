package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 返回 {"success": true}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Error 返回 {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	Error(c, http.StatusBadRequest, message)
}

// InternalServerError 返回500错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(c, http.StatusNotFound, message)
}

// Conflict 返回409错误
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}
