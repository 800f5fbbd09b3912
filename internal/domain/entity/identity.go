package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity はアプリケーション横断で共有される本人情報を表します
// プロフィールまたはアバターのコミット成功後にリフレッシュされ、
// 他の画面はこのオブジェクトを通して新しい値を観測します
type Identity struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Initials    string    `json:"initials"`
	Locale      string    `json:"locale"`
	Theme       string    `json:"theme"`
	RefreshedAt time.Time `json:"refreshed_at"`
}
