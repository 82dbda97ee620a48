package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/utils"
)

type addReviewRequest struct {
	UserID  *int   `json:"userId" binding:"required"`
	MovieID *int   `json:"movieId" binding:"required"`
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ListReviews 电影影评，最新的在前
// GET /api/reviews/:movieId
func (h *Handler) ListReviews(c *gin.Context) {
	movieID, ok := paramInt(c, "movieId")
	if !ok {
		utils.BadRequest(c, "Invalid movie id")
		return
	}

	reviews, err := h.Repos.Review.ListByMovie(movieID)
	if err != nil {
		log.Printf("[Review] 获取影评失败 (movie %d): %v", movieID, err)
		utils.InternalServerError(c, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AddReview 提交影评
// POST /api/reviews
func (h *Handler) AddReview(c *gin.Context) {
	var req addReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindError(err))
		return
	}

	if _, err := h.Repos.Review.Add(*req.UserID, *req.MovieID, *req.Rating, req.Comment); err != nil {
		log.Printf("[Review] 提交失败 (user %d, movie %d): %v", *req.UserID, *req.MovieID, err)
		utils.InternalServerError(c, "Failed to add review")
		return
	}
	utils.Success(c)
}
