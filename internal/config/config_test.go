package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_DRIVER", "UPSTREAM_TIMEOUT_SECONDS", "TMDB_BASE_URL", "GEMINI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDBBaseURL)
	assert.Equal(t, "gemini-3-flash-preview", cfg.GeminiModel)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8088")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "tv")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "3")
	t.Setenv("TMDB_API_KEY", "tmdb-key")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseURL, "@db.internal:")
	assert.Contains(t, cfg.DatabaseURL, "/tv?sslmode=")
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "tmdb-key", cfg.TMDBAPIKey)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "-4")
	assert.Equal(t, 10*time.Second, Load().UpstreamTimeout)

	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "abc")
	assert.Equal(t, 10*time.Second, Load().UpstreamTimeout)
}
