package command

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// RestoreSnapshotInput はスナップショット復元の入力を定義します
type RestoreSnapshotInput struct {
	UserID uuid.UUID
	Domain string
}

// RestoreSnapshotOutput はスナップショット復元の出力を定義します
type RestoreSnapshotOutput struct {
	Draft *entity.SettingsDraft
}

// RestoreSnapshotCommand は指定ドメインの編集内容を最後に読み込んだ
// （または保存した）状態へ巻き戻すコマンドです。ローカル操作のみで
// バックエンドへの通信は発生しません
type RestoreSnapshotCommand struct {
	draftRepo repository.DraftRepository
}

// NewRestoreSnapshotCommand は新しいRestoreSnapshotCommandを作成します
func NewRestoreSnapshotCommand(draftRepo repository.DraftRepository) *RestoreSnapshotCommand {
	return &RestoreSnapshotCommand{draftRepo: draftRepo}
}

// Execute はスナップショット復元を実行します
func (c *RestoreSnapshotCommand) Execute(ctx context.Context, input RestoreSnapshotInput) (*RestoreSnapshotOutput, error) {
	if !entity.ValidDomain(input.Domain) {
		return nil, apperror.NewInvalidRequestError("unknown settings domain")
	}
	domain := entity.Domain(input.Domain)

	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := draft.RestoreSnapshot(domain); err != nil {
		switch {
		case errors.Is(err, entity.ErrSaveInProgress):
			return nil, apperror.NewConflictError("cannot restore while a save is in progress")
		case errors.Is(err, entity.ErrDomainNotRestorable):
			return nil, apperror.NewInvalidRequestError("domain cannot be restored")
		default:
			return nil, err
		}
	}

	if err := c.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &RestoreSnapshotOutput{Draft: draft}, nil
}
