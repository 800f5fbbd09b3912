package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

// AvatarStorage はアバター画像のオブジェクトストレージ操作を定義します
type AvatarStorage interface {
	// Upload は画像をアップロードし、公開URLを返します
	// オブジェクトキーは所有者IDと一意性トークンから導出され、衝突しません
	Upload(ctx context.Context, ownerID uuid.UUID, image valueobject.AvatarImage, r io.Reader) (string, error)
}
