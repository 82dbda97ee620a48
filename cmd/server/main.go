package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/llanera/internal/config"
	"github.com/user/llanera/internal/handler"
	"github.com/user/llanera/internal/repository"
	"github.com/user/llanera/internal/router"
	"github.com/user/llanera/internal/service"
	"github.com/user/llanera/internal/utils"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()
	gin.DefaultWriter = utils.SetupLogging(cfg.LogFile)

	// 等待中断信号以优雅地关闭服务器
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		log.Fatalf("服务器异常退出: %v", err)
	}
	log.Println("服务器已退出")
}

// run 打开数据库并启动 HTTP 服务，ctx 取消时优雅关闭；启动失败返回错误
func run(ctx context.Context, cfg *config.Config) error {
	// 初始化数据库
	dsn := cfg.SQLitePath
	if cfg.DBDriver == "postgres" {
		dsn = cfg.DatabaseURL
	}
	db, err := repository.InitDB(cfg.DBDriver, dsn)
	if err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}

	// 初始化仓库
	repos := repository.NewRepositories(db)
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("关闭数据库失败: %v", err)
		}
	}()

	// 上游服务
	httpClient := utils.NewHTTPClient(cfg.UpstreamTimeout)
	tmdb := service.NewTMDBService(httpClient, cfg.TMDBBaseURL, cfg.TMDBAPIKey)
	gemini := utils.NewGeminiClient(httpClient, cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	recommend := service.NewRecommendationService(gemini)

	// 初始化 Handler 与路由
	h := handler.NewHandler(repos, cfg, tmdb, recommend)
	r := router.New(h)

	// WriteTimeout 需要大于上游超时，否则超时错误来不及返回
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   cfg.UpstreamTimeout + 10*time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("服务器启动于 http://localhost:%s (%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("正在关闭服务器...")

		// 5 秒超时上下文用于关闭过程
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
