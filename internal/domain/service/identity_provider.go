package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// IdentityProvider は共有ストアからの本人情報の読み出しを定義します
type IdentityProvider interface {
	// Get はキャッシュ済みの本人情報を取得します
	// 存在しない場合は NotFound エラーを返します
	Get(ctx context.Context, userID uuid.UUID) (*entity.Identity, error)
}
