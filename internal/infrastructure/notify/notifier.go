package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// LogNotifier は service.Notifier の構造化ログ実装です
// 通知はレスポンスにも含まれるため、ここでは監査用の記録のみを行います
type LogNotifier struct{}

// NewLogNotifier は新しいLogNotifierを作成します
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify は通知を記録します
func (n *LogNotifier) Notify(ctx context.Context, userID uuid.UUID, notice service.Notice) {
	attrs := []any{
		"user_id", userID.String(),
		"level", string(notice.Level),
		"domain", string(notice.Domain),
		"message", notice.Message,
	}
	if notice.Level == service.NoticeError {
		logger.Warn(ctx, "settings notice", attrs...)
		return
	}
	logger.Info(ctx, "settings notice", attrs...)
}
