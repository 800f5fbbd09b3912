package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

// SessionSynchronizer はアプリケーション横断の本人情報の同期を定義します
// プロフィールまたはアバターのコミット成功後に Refresh が呼ばれ、
// 他の画面が新しい値を観測できるようになります
type SessionSynchronizer interface {
	// Refresh は本人情報をバックエンドから再取得して共有ストアを更新します
	Refresh(ctx context.Context, userID uuid.UUID) error

	// SetInterface は適用済みのロケール/テーマを共有ストアへ反映します
	SetInterface(ctx context.Context, userID uuid.UUID, locale valueobject.Locale, theme valueobject.Theme) error
}
