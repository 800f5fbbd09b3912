package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// DraftRepository は編集ドラフトの保管を定義します
// ドラフトは揮発的な状態であり、一定時間操作がなければ破棄されます
type DraftRepository interface {
	// Find はユーザーのドラフトを取得します
	// 存在しない場合は NotFound エラーを返します
	Find(ctx context.Context, userID uuid.UUID) (*entity.SettingsDraft, error)

	// Save はドラフトを保存し、有効期限を延長します
	Save(ctx context.Context, draft *entity.SettingsDraft) error

	// Delete はドラフトを破棄します
	Delete(ctx context.Context, userID uuid.UUID) error
}
