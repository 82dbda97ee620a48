package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/repository"
	"github.com/user/llanera/internal/utils"
)

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type userResponse struct {
	ID    int     `json:"id"`
	Email *string `json:"email"`
}

// CreateUser 创建用户
// POST /api/users
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, bindError(err))
		return
	}

	user, err := h.Repos.User.Create(req.Email, req.Password)
	if errors.Is(err, repository.ErrEmailTaken) {
		utils.Conflict(c, "Email already registered")
		return
	}
	if err != nil {
		log.Printf("[User] 创建用户失败: %v", err)
		utils.InternalServerError(c, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// GetUser 查询用户
// GET /api/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.Repos.User.FindByID(id)
	if err != nil {
		log.Printf("[User] 查询用户失败 (id %d): %v", id, err)
		utils.InternalServerError(c, "Failed to fetch user")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}
