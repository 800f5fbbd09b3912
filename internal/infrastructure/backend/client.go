package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// Config はバックエンドAPI接続設定を定義します
type Config struct {
	BaseURL string        // 例: https://api.llct.example.com
	Timeout time.Duration // リクエストタイムアウト
}

// DefaultConfig はデフォルト設定を返します
func DefaultConfig() Config {
	return Config{
		Timeout: 15 * time.Second,
	}
}

// Client はバックエンドAPIへのHTTPクライアントを提供します
// 利用者のアクセストークンはコンテキスト経由で転送されます
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient は新しいClientを作成します
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
	}
}

type tokenContextKey struct{}

// ContextWithToken は転送用アクセストークンをコンテキストへ格納します
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// errorEnvelope はバックエンドのエラーレスポンス形式です
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Do はJSONリクエストを実行し、レスポンスボディをoutへデコードします
// トランスポート障害は NetworkError、4xx/5xx は CommitError 系へ変換されます
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternalError(fmt.Errorf("failed to encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewInternalError(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.asAppError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperror.NewNetworkError(fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return nil
}

func (c *Client) asAppError(resp *http.Response) error {
	var envelope errorEnvelope
	message := ""
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&envelope); err == nil {
		message = envelope.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "authentication required"
		}
		return apperror.NewUnauthorizedError(message)
	case http.StatusNotFound:
		return apperror.NewNotFoundError("resource")
	default:
		return apperror.NewCommitError(message, resp.StatusCode)
	}
}
