package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// RestoreDefaultsInput は既定値復元の入力を定義します
type RestoreDefaultsInput struct {
	UserID uuid.UUID
	Domain string
}

// RestoreDefaultsOutput は既定値復元の出力を定義します
type RestoreDefaultsOutput struct {
	Preferences entity.NotificationPreferences
}

// RestoreDefaultsCommand は通知設定をシステム既定値へ戻し、即座に
// バックエンドへコミットするコマンドです。楽観的にローカルへ適用し、
// コミット失敗時は適用前の状態へロールバックします
type RestoreDefaultsCommand struct {
	draftRepo      repository.DraftRepository
	preferencesSvc service.PreferencesService
	notifier       service.Notifier
}

// NewRestoreDefaultsCommand は新しいRestoreDefaultsCommandを作成します
func NewRestoreDefaultsCommand(
	draftRepo repository.DraftRepository,
	preferencesSvc service.PreferencesService,
	notifier service.Notifier,
) *RestoreDefaultsCommand {
	return &RestoreDefaultsCommand{
		draftRepo:      draftRepo,
		preferencesSvc: preferencesSvc,
		notifier:       notifier,
	}
}

// Execute は既定値復元を実行します
// 対象は通知設定ドメインのみです
func (c *RestoreDefaultsCommand) Execute(ctx context.Context, input RestoreDefaultsInput) (*RestoreDefaultsOutput, error) {
	if entity.Domain(input.Domain) != entity.DomainPreferences {
		return nil, apperror.NewInvalidRequestError("defaults can only be restored for notification preferences")
	}

	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !draft.BeginSave() {
		return nil, apperror.NewConflictError("cannot restore defaults while a save is in progress")
	}
	defer draft.EndSave()

	prevEdit, prevSnapshot := draft.PreferencesState()
	defaults := entity.DefaultNotificationPreferences()

	// 楽観的適用: コミット中も画面は既定値かつ未変更として見える
	draft.OverridePreferences(defaults, defaults)

	committed, err := c.preferencesSvc.Put(ctx, defaults)
	if err != nil {
		draft.OverridePreferences(prevEdit, prevSnapshot)
		c.notifier.Notify(ctx, input.UserID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainPreferences,
			Message: "failed to restore default preferences",
		})
		return nil, err
	}

	committed = committed.Normalize()
	draft.OverridePreferences(committed, committed)

	if err := c.draftRepo.Save(ctx, draft); err != nil {
		logger.Warn(ctx, "failed to persist settings draft after restoring defaults", "error", err)
	}

	c.notifier.Notify(ctx, input.UserID, service.Notice{
		Level:   service.NoticeSuccess,
		Domain:  entity.DomainPreferences,
		Message: "notification preferences restored to defaults",
	})

	return &RestoreDefaultsOutput{Preferences: committed}, nil
}
