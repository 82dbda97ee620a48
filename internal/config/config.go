package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env             string
	Port            string
	DBDriver        string
	DatabaseURL     string
	SQLitePath      string
	TMDBAPIKey      string
	TMDBBaseURL     string
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string
	UpstreamTimeout time.Duration
	ClientDistDir   string
	LogFile         string
}

// Load 加载配置
func Load() *Config {
	timeoutSeconds, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 10
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "llanera_tv")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "3000"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:     dbURL,
		SQLitePath:      getEnv("SQLITE_PATH", "llanera_tv.db"),
		TMDBAPIKey:      getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:     getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiBaseURL:   getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		UpstreamTimeout: time.Duration(timeoutSeconds) * time.Second,
		ClientDistDir:   getEnv("CLIENT_DIST_DIR", "./dist"),
		LogFile:         getEnv("LOG_FILE", ""),
	}

	if cfg.TMDBAPIKey == "" {
		log.Println("【警告】未设置 TMDB_API_KEY，电影接口将返回错误")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("【警告】未设置 GEMINI_API_KEY，AI 推荐将始终返回空列表")
	}

	return cfg
}

// IsProduction 是否为生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
