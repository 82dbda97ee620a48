package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 健康检查
// GET /health
func (h *Handler) Health(c *gin.Context) {
	if err := h.Repos.Ping(); err != nil {
		log.Printf("[Health] 数据库不可用: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
