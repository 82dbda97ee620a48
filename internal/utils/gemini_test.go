package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiGenerateJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"))

		var req GeminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[1,2]"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(NewHTTPClient(time.Second), srv.URL+"/", "k", "test-model")
	text, err := c.GenerateJSON(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", text)
}

func TestGeminiGenerateJSON_NotConfigured(t *testing.T) {
	c := NewGeminiClient(NewHTTPClient(time.Second), "http://unused", " ", "m")
	_, err := c.GenerateJSON(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrGeminiNotConfigured)
}

func TestGeminiGenerateJSON_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(NewHTTPClient(time.Second), srv.URL, "k", "m")
	_, err := c.GenerateJSON(context.Background(), "hello")
	require.Error(t, err)
}

func TestGeminiGenerateJSON_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(NewHTTPClient(time.Second), srv.URL, "k", "m")
	_, err := c.GenerateJSON(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
