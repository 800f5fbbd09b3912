package cache

import "fmt"

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	// 本人情報キャッシュ
	PrefixIdentity KeyPrefix = "cache:identity" // cache:identity:{user_id}

	// レート制限
	PrefixRateLimit KeyPrefix = "ratelimit" // ratelimit:{type}:{identifier}
)

// CacheKey はプレフィックス付きのRedisキーを生成します
func CacheKey(prefix KeyPrefix, key string) string {
	return fmt.Sprintf("%s:%s", prefix, key)
}
