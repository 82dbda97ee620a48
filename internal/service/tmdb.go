package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/user/llanera/internal/utils"
)

// ErrUpstreamUnavailable 上游服务不可用（网络错误、超时、非 2xx、非 JSON）
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// TMDBService 电影元数据代理，凭据只在服务端注入
type TMDBService struct {
	client  *utils.HTTPClient
	baseURL string
	apiKey  string
}

func NewTMDBService(client *utils.HTTPClient, baseURL, apiKey string) *TMDBService {
	return &TMDBService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
	}
}

// GetTrending 本周热门电影
func (s *TMDBService) GetTrending(ctx context.Context) (json.RawMessage, error) {
	return s.get(ctx, "/trending/movie/week", nil)
}

// Search 按关键词搜索电影
func (s *TMDBService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return s.get(ctx, "/search/movie", url.Values{"query": {query}})
}

// GetDetails 电影详情，一次请求带上预告片、演职员和相关推荐
func (s *TMDBService) GetDetails(ctx context.Context, movieID int) (json.RawMessage, error) {
	return s.get(ctx, fmt.Sprintf("/movie/%d", movieID), url.Values{
		"append_to_response": {"videos,credits,recommendations"},
	})
}

func (s *TMDBService) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if s.apiKey == "" {
		log.Printf("[TMDB] 未配置 TMDB_API_KEY，跳过请求 %s", path)
		return nil, ErrUpstreamUnavailable
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", s.apiKey)
	endpoint := s.baseURL + path + "?" + q.Encode()

	raw, err := s.client.GetJSON(ctx, endpoint)
	if err != nil {
		log.Printf("[TMDB] 请求失败 %s: %v", path, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, path)
	}
	return raw, nil
}
