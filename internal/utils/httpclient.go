package utils

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "LlaneraTV/1.0 (+https://github.com/user/llanera)"

// maxBodySize 上游响应体上限，防止异常响应占满内存
const maxBodySize = 16 << 20

// HTTPClient 上游 HTTP 客户端，每次调用都带超时
type HTTPClient struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewHTTPClient 创建新的HTTP客户端，timeout 作用于单次请求（含读取响应体）
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// GetJSON 发送GET请求，返回原始 JSON 响应体
func (c *HTTPClient) GetJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, rawURL, nil, nil)
}

// PostJSON 以 JSON 发送 POST 请求，返回原始 JSON 响应体
func (c *HTTPClient) PostJSON(ctx context.Context, rawURL string, headers map[string]string, payload interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}
	return c.do(ctx, http.MethodPost, rawURL, headers, data)
}

func (c *HTTPClient) do(ctx context.Context, method, rawURL string, headers map[string]string, body []byte) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", redactErr(err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", redactErr(err))
	}
	defer resp.Body.Close()

	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("创建gzip读取器失败: %w", err)
		}
		defer reader.Close()
	case "deflate":
		reader = flate.NewReader(resp.Body)
		defer reader.Close()
	default:
		reader = resp.Body
	}

	data, err := io.ReadAll(io.LimitReader(reader, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", redactErr(err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(data, 200)}
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("响应不是合法 JSON: %s", truncate(data, 200))
	}
	return json.RawMessage(data), nil
}

// StatusError 上游返回非 2xx 状态码
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("请求失败，状态码: %d, 响应体: %s", e.StatusCode, e.Body)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// secretParams 日志中需要隐藏的查询参数
var secretParams = []string{"api_key", "key"}

// RedactURL 隐藏 URL 中的凭据参数
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func redactErr(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = RedactURL(ue.URL)
	}
	return err
}
