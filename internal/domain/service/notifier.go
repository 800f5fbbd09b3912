package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// NoticeLevel は通知の種別を表します
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice は利用者向けの一時通知（トースト相当）を表します
type Notice struct {
	Level   NoticeLevel   `json:"level"`
	Domain  entity.Domain `json:"domain,omitempty"`
	Message string        `json:"message"`
}

// Notifier はドメインごとの保存結果を利用者へ通知する手段を定義します
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notice Notice)
}
