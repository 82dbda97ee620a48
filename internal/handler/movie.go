package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/utils"
)

type searchQuery struct {
	Query string `form:"query" binding:"required,notblank"`
}

// Trending 本周热门
// GET /api/movies/trending
func (h *Handler) Trending(c *gin.Context) {
	data, err := h.Movies.GetTrending(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch movies")
		return
	}
	writeRaw(c, data)
}

// SearchMovies 搜索电影
// GET /api/movies/search?query=
func (h *Handler) SearchMovies(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.BadRequest(c, bindError(err))
		return
	}

	data, err := h.Movies.Search(c.Request.Context(), q.Query)
	if err != nil {
		utils.InternalServerError(c, "Search failed")
		return
	}
	writeRaw(c, data)
}

// MovieDetails 电影详情
// GET /api/movies/:id
func (h *Handler) MovieDetails(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid movie id")
		return
	}

	data, err := h.Movies.GetDetails(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch movie details")
		return
	}
	writeRaw(c, data)
}

// writeRaw 原样返回上游 JSON
func writeRaw(c *gin.Context, data json.RawMessage) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
