package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// RecommendationCount 每次请求的推荐数量
const RecommendationCount = 5

// Recommendation AI 推荐条目
type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// RecommendationResult 推荐结果
// Fallback 为 true 时表示上游失败或响应无法解析，Items 为空列表，Cause 记录原因
type RecommendationResult struct {
	Items    []Recommendation
	Fallback bool
	Cause    error
}

// TextGenerator 文本生成接口，要求返回 JSON 文本
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// RecommendationService AI 推荐服务
type RecommendationService struct {
	generator TextGenerator
}

func NewRecommendationService(generator TextGenerator) *RecommendationService {
	return &RecommendationService{generator: generator}
}

// GetRecommendations 根据喜欢的类型和最近看过的电影生成推荐，任何失败都降级为空列表
func (s *RecommendationService) GetRecommendations(ctx context.Context, genres, recentTitles []string) RecommendationResult {
	text, err := s.generator.GenerateJSON(ctx, BuildRecommendationPrompt(genres, recentTitles))
	if err != nil {
		return fallback(fmt.Errorf("generate: %w", err))
	}

	items, err := ParseRecommendations(text)
	if err != nil {
		return fallback(fmt.Errorf("parse: %w", err))
	}
	return RecommendationResult{Items: items}
}

func fallback(cause error) RecommendationResult {
	log.Printf("[Recommend] AI 推荐失败，返回空列表: %v", cause)
	return RecommendationResult{
		Items:    []Recommendation{},
		Fallback: true,
		Cause:    cause,
	}
}

// BuildRecommendationPrompt 构造推荐提示词
func BuildRecommendationPrompt(genres, recentTitles []string) string {
	return fmt.Sprintf(`Act as an expert film critic for Llanera TV+.
Based on these favorite genres: %s
and these recently watched movies: %s,
recommend exactly %d movies the user might enjoy.
Respond with ONLY a JSON array of exactly %d objects, each with the fields "title" and "reason". No other text.`,
		joinOrNone(genres), joinOrNone(recentTitles), RecommendationCount, RecommendationCount)
}

func joinOrNone(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	if len(cleaned) == 0 {
		return "(none)"
	}
	return strings.Join(cleaned, ", ")
}

// ParseRecommendations 解析模型返回的 JSON 数组，任何解析错误都丢弃整个响应
func ParseRecommendations(text string) ([]Recommendation, error) {
	var items []Recommendation
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("response is not a JSON array")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Title) == "" {
			return nil, fmt.Errorf("item %d has no title", i)
		}
	}
	return items, nil
}
