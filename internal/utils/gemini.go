package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// GeminiRequest Gemini API 请求结构
type GeminiRequest struct {
	Contents         []GeminiContent         `json:"contents"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiGenerationConfig 生成参数，ResponseMIMEType 设为 application/json 时要求模型输出 JSON
type GeminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// GeminiResponse Gemini API 响应结构
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ErrGeminiNotConfigured 未配置 GEMINI_API_KEY
var ErrGeminiNotConfigured = errors.New("GEMINI_API_KEY is not set")

// GeminiClient Gemini generateContent 客户端
type GeminiClient struct {
	http    *HTTPClient
	baseURL string
	apiKey  string
	model   string
}

// NewGeminiClient 创建 Gemini 客户端
func NewGeminiClient(httpClient *HTTPClient, baseURL, apiKey, model string) *GeminiClient {
	return &GeminiClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
	}
}

// GenerateJSON 调用 Gemini 生成内容并要求返回 JSON 文本，返回第一个候选的文本
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrGeminiNotConfigured
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: &GeminiGenerationConfig{ResponseMIMEType: "application/json"},
	}

	raw, err := c.http.PostJSON(ctx, endpoint, map[string]string{"x-goog-api-key": c.apiKey}, reqBody)
	if err != nil {
		return "", fmt.Errorf("post request to gemini failed: %w", err)
	}

	var result GeminiResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode response failed: %w", err)
	}

	if result.Error != nil {
		return "", fmt.Errorf("gemini api error: %s", result.Error.Message)
	}

	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		return result.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("gemini returned no content")
}
