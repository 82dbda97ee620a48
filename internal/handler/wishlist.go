package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/utils"
)

type addWishlistRequest struct {
	UserID     *int   `json:"userId" binding:"required"`
	MovieID    *int   `json:"movieId" binding:"required"`
	Title      string `json:"title"`
	PosterPath string `json:"posterPath"`
}

// ListWishlist 用户想看列表
// GET /api/wishlist/:userId
func (h *Handler) ListWishlist(c *gin.Context) {
	userID, ok := paramInt(c, "userId")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	items, err := h.Repos.Wishlist.ListByUser(userID)
	if err != nil {
		log.Printf("[Wishlist] 获取想看列表失败 (user %d): %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch wishlist")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddWishlist 添加想看
// POST /api/wishlist
func (h *Handler) AddWishlist(c *gin.Context) {
	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindError(err))
		return
	}

	if _, err := h.Repos.Wishlist.Add(*req.UserID, *req.MovieID, req.Title, req.PosterPath); err != nil {
		log.Printf("[Wishlist] 添加失败 (user %d, movie %d): %v", *req.UserID, *req.MovieID, err)
		utils.InternalServerError(c, "Failed to add to wishlist")
		return
	}
	utils.Success(c)
}

// RemoveWishlist 删除想看，没有匹配的条目也返回成功
// DELETE /api/wishlist/:userId/:movieId
func (h *Handler) RemoveWishlist(c *gin.Context) {
	userID, ok := paramInt(c, "userId")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}
	movieID, ok := paramInt(c, "movieId")
	if !ok {
		utils.BadRequest(c, "Invalid movie id")
		return
	}

	if _, err := h.Repos.Wishlist.Remove(userID, movieID); err != nil {
		log.Printf("[Wishlist] 删除失败 (user %d, movie %d): %v", userID, movieID, err)
		utils.InternalServerError(c, "Failed to remove from wishlist")
		return
	}
	utils.Success(c)
}
