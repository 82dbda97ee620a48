package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/user/llanera/internal/handler"
	"github.com/user/llanera/internal/middleware"
	"github.com/user/llanera/internal/utils"
)

// New 创建 gin 引擎并注册中间件与路由
func New(h *handler.Handler) *gin.Engine {
	if h.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(!h.Config.IsProduction()))

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		movies := api.Group("/movies")
		movies.GET("/trending", h.Trending)
		movies.GET("/search", h.SearchMovies)
		movies.GET("/:id", h.MovieDetails)

		api.GET("/wishlist/:userId", h.ListWishlist)
		api.POST("/wishlist", h.AddWishlist)
		api.DELETE("/wishlist/:userId/:movieId", h.RemoveWishlist)

		api.GET("/reviews/:movieId", h.ListReviews)
		api.POST("/reviews", h.AddReview)

		api.POST("/recommendations", h.Recommendations)

		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
	}

	r.NoRoute(spaFallback(h.Config.IsProduction(), h.Config.ClientDistDir))
}

// spaFallback 生产环境下托管前端构建产物，未知路径回退到 index.html
// /api 下的未知路径始终返回 JSON 404
func spaFallback(serveClient bool, distDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !serveClient || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			utils.NotFound(c, "")
			return
		}

		// 先找静态文件，例如 /assets/index-abc.js
		// 路径已经 Clean 过，不会逃出 distDir
		if path != "/" {
			file := filepath.Join(distDir, filepath.FromSlash(filepath.Clean("/"+path)))
			if serveFile(c, file) {
				return
			}
		}

		if !serveFile(c, filepath.Join(distDir, "index.html")) {
			utils.NotFound(c, "")
		}
	}
}

// serveFile 输出普通文件，文件不存在或是目录时返回 false
// 不用 c.File：http.ServeFile 会按原始请求路径拒绝带 .. 的请求
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
