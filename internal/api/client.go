package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"
)

// APIError 表示 API 请求错误，包含状态码和错误信息
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API请求失败 (状态码: %d): %s", e.StatusCode, e.Message)
}

// 生成服务对上游模型的超时是120秒，默认值保持一致
const defaultTimeoutSeconds = 120

// 全局共享的Transport，实现连接池化
var (
	sharedTransport *http.Transport
	transportOnce   sync.Once
)

// getSharedTransport 返回共享的Transport实例
func getSharedTransport() *http.Transport {
	transportOnce.Do(func() {
		sharedTransport = &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			MaxConnsPerHost:     50,
			TLSHandshakeTimeout: 10 * time.Second,
		}
	})
	return sharedTransport
}

type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient 创建生成服务的客户端
// endpoint: 生成接口的完整地址，例如 http://localhost:8000/generate/
// timeoutSeconds: 单次请求的超时秒数，小于等于0时取默认的120秒
func NewClient(endpoint string, timeoutSeconds int) *Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultTimeoutSeconds
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   time.Duration(timeoutSeconds) * time.Second,
			Transport: getSharedTransport(),
		},
	}
}

// Generate 把提示词作为 multipart 表单的 prompt 字段 POST 给生成服务
// 每次调用只发一个请求，不做重试
func (c *Client) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("编码表单失败: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("编码表单失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bodyBytes),
		}
	}

	var payload generatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	if payload.Code == nil {
		return nil, fmt.Errorf("响应缺少 code 字段")
	}

	return &GenerateResponse{Code: *payload.Code}, nil
}
