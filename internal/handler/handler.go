package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/user/llanera/internal/config"
	"github.com/user/llanera/internal/repository"
	"github.com/user/llanera/internal/service"
)

// MovieProvider 电影元数据代理
type MovieProvider interface {
	GetTrending(ctx context.Context) (json.RawMessage, error)
	Search(ctx context.Context, query string) (json.RawMessage, error)
	GetDetails(ctx context.Context, movieID int) (json.RawMessage, error)
}

// Recommender AI 推荐
type Recommender interface {
	GetRecommendations(ctx context.Context, genres, recentTitles []string) service.RecommendationResult
}

var (
	_ MovieProvider = (*service.TMDBService)(nil)
	_ Recommender   = (*service.RecommendationService)(nil)
)

// Handler HTTP 处理器
type Handler struct {
	Repos     *repository.Repositories
	Config    *config.Config
	Movies    MovieProvider
	Recommend Recommender
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, movies MovieProvider, recommend Recommender) *Handler {
	registerValidators()
	return &Handler{
		Repos:     repos,
		Config:    cfg,
		Movies:    movies,
		Recommend: recommend,
	}
}

var validatorsOnce sync.Once

// registerValidators 注册自定义校验规则
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[Validator] gin 校验引擎不是 validator/v10，跳过注册自定义规则")
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			log.Printf("[Validator] 注册 notblank 规则失败: %v", err)
		}
	})
}

// bindError 把绑定/校验错误转换成简短的提示
func bindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return fmt.Sprintf("Invalid request: %s is required", fe.Field())
		default:
			return fmt.Sprintf("Invalid request: %s failed %s validation", fe.Field(), fe.Tag())
		}
	}
	return "Invalid request body"
}

// paramInt 读取整数路径参数
func paramInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return v, true
}
