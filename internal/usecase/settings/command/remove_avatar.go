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

// RemoveAvatarInput はアバター削除の入力を定義します
type RemoveAvatarInput struct {
	UserID uuid.UUID
}

// RemoveAvatarOutput はアバター削除の出力を定義します
type RemoveAvatarOutput struct {
	Profile entity.Profile
}

// RemoveAvatarCommand はアバターURLを空にしてプロフィールへコミットするコマンドです
// 以降の表示はイニシャルへフォールバックします。ストレージ上の
// オブジェクトはここでは削除しません
type RemoveAvatarCommand struct {
	draftRepo   repository.DraftRepository
	profileSvc  service.ProfileService
	sessionSync service.SessionSynchronizer
	notifier    service.Notifier
}

// NewRemoveAvatarCommand は新しいRemoveAvatarCommandを作成します
func NewRemoveAvatarCommand(
	draftRepo repository.DraftRepository,
	profileSvc service.ProfileService,
	sessionSync service.SessionSynchronizer,
	notifier service.Notifier,
) *RemoveAvatarCommand {
	return &RemoveAvatarCommand{
		draftRepo:   draftRepo,
		profileSvc:  profileSvc,
		sessionSync: sessionSync,
		notifier:    notifier,
	}
}

// Execute はアバター削除を実行します
func (c *RemoveAvatarCommand) Execute(ctx context.Context, input RemoveAvatarInput) (*RemoveAvatarOutput, error) {
	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !draft.Profile().HasAvatar() {
		return nil, apperror.NewInvalidRequestError("no avatar to remove")
	}

	empty := ""
	committed, err := c.profileSvc.Patch(ctx, service.ProfilePatch{AvatarURL: &empty})
	if err != nil {
		c.notifier.Notify(ctx, input.UserID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainAvatar,
			Message: "failed to remove avatar",
		})
		return nil, err
	}

	reconcileProfile(ctx, c.profileSvc, draft, *committed)

	if err := c.sessionSync.Refresh(ctx, input.UserID); err != nil {
		logger.Warn(ctx, "failed to refresh cached identity after avatar removal", "error", err)
	}
	if err := c.draftRepo.Save(ctx, draft); err != nil {
		logger.Warn(ctx, "failed to persist settings draft after avatar removal", "error", err)
	}

	c.notifier.Notify(ctx, input.UserID, service.Notice{
		Level:   service.NoticeSuccess,
		Domain:  entity.DomainAvatar,
		Message: "avatar removed",
	})

	return &RemoveAvatarOutput{Profile: draft.Profile()}, nil
}
