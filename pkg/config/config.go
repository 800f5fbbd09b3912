package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を定義します
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Storage  StorageConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Draft    DraftConfig
}

// ServerConfig はサーバー設定を定義します
type ServerConfig struct {
	Port  int
	Debug bool
}

// BackendConfig は管理バックエンドAPIへの接続設定を定義します
type BackendConfig struct {
	BaseURL string        // 例: https://api.example.vn/api/v1
	Timeout time.Duration // 1リクエストあたりのタイムアウト
}

// StorageConfig はオブジェクトストレージ設定を定義します
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicBaseURL   string // アップロード後に公開されるURLのベース
}

// RedisConfig はRedis設定を定義します
type RedisConfig struct {
	URL string
}

// JWTConfig はJWT設定を定義します
type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  []string
}

// SecurityConfig はセキュリティ設定を定義します
type SecurityConfig struct {
	CORSOrigins []string
}

// DraftConfig は編集ドラフト設定を定義します
type DraftConfig struct {
	TTL time.Duration // 放置されたドラフトが破棄されるまでの時間
}

// Load は環境変数から設定を読み込みます
// カレントディレクトリに .env があれば先に読み込まれます
func Load() (*Config, error) {
	_ = godotenv.Load()

	port := 8080
	if p := os.Getenv("SERVER_PORT"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &port); err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
	}

	backendTimeout := 15 * time.Second
	if t := os.Getenv("BACKEND_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
		}
		backendTimeout = d
	}

	draftTTL := 30 * time.Minute
	if t := os.Getenv("DRAFT_TTL"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, fmt.Errorf("invalid DRAFT_TTL: %w", err)
		}
		draftTTL = d
	}

	return &Config{
		Server: ServerConfig{
			Port:  port,
			Debug: os.Getenv("DEBUG") == "true",
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_API_URL", "http://localhost:4000/api/v1"),
			Timeout: backendTimeout,
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "llct-media"),
			UseSSL:          os.Getenv("STORAGE_USE_SSL") == "true",
			PublicBaseURL:   getEnv("STORAGE_PUBLIC_URL", "http://localhost:9000"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Issuer:    getEnv("JWT_ISSUER", "llct-admin"),
			Audience:  parseCSV(getEnv("JWT_AUDIENCE", "llct-api")),
		},
		Security: SecurityConfig{
			CORSOrigins: parseCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Draft: DraftConfig{
			TTL: draftTTL,
		},
	}, nil
}

// parseCSV はカンマ区切り文字列をスライスに変換します
func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnv は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
