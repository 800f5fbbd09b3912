package command

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// UploadAvatarInput はアバターアップロードの入力を定義します
type UploadAvatarInput struct {
	UserID      uuid.UUID
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadAvatarOutput はアバターアップロードの出力を定義します
type UploadAvatarOutput struct {
	AvatarURL string
	Profile   entity.Profile
}

// UploadAvatarCommand はアバター画像を2段階で反映するコマンドです
// まずオブジェクトストレージへアップロードし、得られたURLを
// プロフィールへコミットします。コミット失敗時にストレージ上へ
// 残るオブジェクトは参照されないまま放置されます（次回成功時に上書き）
type UploadAvatarCommand struct {
	draftRepo     repository.DraftRepository
	avatarStorage service.AvatarStorage
	profileSvc    service.ProfileService
	sessionSync   service.SessionSynchronizer
	notifier      service.Notifier
}

// NewUploadAvatarCommand は新しいUploadAvatarCommandを作成します
func NewUploadAvatarCommand(
	draftRepo repository.DraftRepository,
	avatarStorage service.AvatarStorage,
	profileSvc service.ProfileService,
	sessionSync service.SessionSynchronizer,
	notifier service.Notifier,
) *UploadAvatarCommand {
	return &UploadAvatarCommand{
		draftRepo:     draftRepo,
		avatarStorage: avatarStorage,
		profileSvc:    profileSvc,
		sessionSync:   sessionSync,
		notifier:      notifier,
	}
}

// Execute はアバターアップロードを実行します
// ファイル検証はアップロードI/Oの前に行われます
func (c *UploadAvatarCommand) Execute(ctx context.Context, input UploadAvatarInput) (*UploadAvatarOutput, error) {
	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	image, err := valueobject.NewAvatarImage(input.ContentType, input.Size)
	if err != nil {
		return nil, apperror.NewValidationError("invalid avatar file", []apperror.FieldError{
			{Field: "file", Message: err.Error()},
		})
	}

	url, err := c.avatarStorage.Upload(ctx, input.UserID, image, input.Body)
	if err != nil {
		c.notifier.Notify(ctx, input.UserID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainAvatar,
			Message: "failed to upload avatar image",
		})
		return nil, err
	}

	committed, err := c.profileSvc.Patch(ctx, service.ProfilePatch{AvatarURL: &url})
	if err != nil {
		// ストレージ上のオブジェクトは参照されないまま残る
		logger.Warn(ctx, "avatar committed to storage but profile update failed, object orphaned",
			"avatar_url", url, "error", err)
		c.notifier.Notify(ctx, input.UserID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainAvatar,
			Message: "failed to update profile with new avatar",
		})
		return nil, err
	}

	reconcileProfile(ctx, c.profileSvc, draft, *committed)

	if err := c.sessionSync.Refresh(ctx, input.UserID); err != nil {
		logger.Warn(ctx, "failed to refresh cached identity after avatar change", "error", err)
	}
	if err := c.draftRepo.Save(ctx, draft); err != nil {
		logger.Warn(ctx, "failed to persist settings draft after avatar change", "error", err)
	}

	c.notifier.Notify(ctx, input.UserID, service.Notice{
		Level:   service.NoticeSuccess,
		Domain:  entity.DomainAvatar,
		Message: "avatar updated",
	})

	return &UploadAvatarOutput{AvatarURL: url, Profile: draft.Profile()}, nil
}

// reconcileProfile は確定済みプロフィールでスナップショットを更新します
// 再取得した最新状態を正とし、再取得に失敗した場合はコミット応答で代用します
func reconcileProfile(ctx context.Context, profileSvc service.ProfileService, draft *entity.SettingsDraft, committed entity.Profile) {
	resource, err := profileSvc.Fetch(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "failed to refetch profile after avatar change", "error", err)
		}
		draft.ReconcileProfile(committed)
		return
	}
	draft.ReconcileProfile(resource.Profile)
}
