package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AvatarKey はアバターオブジェクトのキーを表します
// 形式: avatars/{owner_id}/{uploaded_at_unix}-{token}{ext}
// タイムスタンプと一意トークンにより、同一ユーザーの再アップロードでも
// キーが衝突することはありません
type AvatarKey struct {
	OwnerID    uuid.UUID
	UploadedAt int64
	Token      uuid.UUID
	Ext        string
}

// NewAvatarKey は新しいAvatarKeyを作成します
func NewAvatarKey(ownerID uuid.UUID, uploadedAt int64, ext string) AvatarKey {
	return AvatarKey{
		OwnerID:    ownerID,
		UploadedAt: uploadedAt,
		Token:      uuid.New(),
		Ext:        ext,
	}
}

// String はキー文字列を返します
func (k AvatarKey) String() string {
	return fmt.Sprintf("avatars/%s/%d-%s%s", k.OwnerID, k.UploadedAt, k.Token, k.Ext)
}

// ParseAvatarKey はキー文字列をパースします
func ParseAvatarKey(key string) (AvatarKey, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != "avatars" {
		return AvatarKey{}, fmt.Errorf("invalid avatar key format: %s", key)
	}

	ownerID, err := uuid.Parse(parts[1])
	if err != nil {
		return AvatarKey{}, fmt.Errorf("invalid owner_id: %w", err)
	}

	name := parts[2]
	ext := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		ext = name[idx:]
		name = name[:idx]
	}

	var uploadedAt int64
	var token uuid.UUID
	dash := strings.Index(name, "-")
	if dash < 0 {
		return AvatarKey{}, fmt.Errorf("invalid avatar key name: %s", parts[2])
	}
	if _, err := fmt.Sscanf(name[:dash], "%d", &uploadedAt); err != nil {
		return AvatarKey{}, fmt.Errorf("invalid uploaded_at: %w", err)
	}
	token, err = uuid.Parse(name[dash+1:])
	if err != nil {
		return AvatarKey{}, fmt.Errorf("invalid token: %w", err)
	}

	return AvatarKey{OwnerID: ownerID, UploadedAt: uploadedAt, Token: token, Ext: ext}, nil
}
