package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/utils"
)

type recommendationRequest struct {
	Genres       []string `json:"genres" binding:"max=20,dive,max=100"`
	RecentTitles []string `json:"recentTitles" binding:"max=20,dive,max=200"`
}

// Recommendations AI 推荐，上游失败时返回空数组而不是错误
// POST /api/recommendations
func (h *Handler) Recommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindError(err))
		return
	}

	res := h.Recommend.GetRecommendations(c.Request.Context(), req.Genres, req.RecentTitles)
	if res.Fallback {
		c.Header("X-Recommendations-Fallback", "true")
	}
	c.JSON(http.StatusOK, res.Items)
}
