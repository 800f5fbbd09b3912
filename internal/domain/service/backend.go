package service

import (
	"context"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// ProfilePatch はプロフィールリソースへの部分更新を表します
// nil のフィールドは送信されません
type ProfilePatch struct {
	DisplayName  *string
	Handle       *string
	ExternalCode *string
	Bio          *string
	AvatarURL    *string
}

// ProfileResource はバックエンドのプロフィールリソースを表します
// ロケール/テーマはリソース上に保存されますが、適用自体はクライアント側の
// ローカル操作です
type ProfileResource struct {
	Profile entity.Profile
	Locale  string
	Theme   string
}

// ProfileService はリモートのプロフィールリソースへの操作を定義します
// 認可はコンテキストに載せたアクセストークンの転送で行われます
type ProfileService interface {
	// Fetch は現在のプロフィールを取得します
	Fetch(ctx context.Context) (*ProfileResource, error)

	// Patch は部分更新をコミットします
	// トランスポート障害は NetworkError、サーバーの拒否は CommitError になります
	Patch(ctx context.Context, patch ProfilePatch) (*entity.Profile, error)
}

// PreferencesService はリモートの通知設定リソースへの操作を定義します
type PreferencesService interface {
	// Fetch は現在の通知設定を取得します
	Fetch(ctx context.Context) (entity.NotificationPreferences, error)

	// Put は通知設定オブジェクトを置き換えます
	// 結合ルール（alert == system, general == false）は送信前に
	// クライアント側で強制されます
	Put(ctx context.Context, prefs entity.NotificationPreferences) (entity.NotificationPreferences, error)
}
