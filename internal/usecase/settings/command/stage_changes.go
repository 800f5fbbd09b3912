package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// StageChangesInput は下書き更新の入力を定義します
// nilのフィールドは変更なしを意味します
type StageChangesInput struct {
	UserID                  uuid.UUID
	DisplayName             *string
	Handle                  *string
	ExternalCode            *string
	Bio                     *string
	SystemNotifications     *bool
	InstructorNotifications *bool
	Locale                  *string
	Theme                   *string
}

// StageChangesOutput は下書き更新の出力を定義します
type StageChangesOutput struct {
	Dirty      map[entity.Domain]bool
	HasChanges bool
}

// StageChangesCommand は設定ドラフトへ編集内容を反映するコマンドです
// 変更はローカルの下書きにのみ適用され、バックエンドへは送信しません
type StageChangesCommand struct {
	draftRepo repository.DraftRepository
}

// NewStageChangesCommand は新しいStageChangesCommandを作成します
func NewStageChangesCommand(draftRepo repository.DraftRepository) *StageChangesCommand {
	return &StageChangesCommand{draftRepo: draftRepo}
}

// Execute は下書き更新を実行します
func (c *StageChangesCommand) Execute(ctx context.Context, input StageChangesInput) (*StageChangesOutput, error) {
	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	draft.StageProfile(entity.ProfilePatch{
		DisplayName:  input.DisplayName,
		Handle:       input.Handle,
		ExternalCode: input.ExternalCode,
		Bio:          input.Bio,
	})
	draft.StagePreferences(input.SystemNotifications, input.InstructorNotifications)

	if input.Locale != nil {
		locale, err := valueobject.NewLocale(*input.Locale)
		if err != nil {
			return nil, apperror.NewValidationError("invalid locale", []apperror.FieldError{
				{Field: "locale", Message: err.Error()},
			})
		}
		draft.SelectLocale(locale)
	}
	if input.Theme != nil {
		theme, err := valueobject.NewTheme(*input.Theme)
		if err != nil {
			return nil, apperror.NewValidationError("invalid theme", []apperror.FieldError{
				{Field: "theme", Message: err.Error()},
			})
		}
		draft.SelectTheme(theme)
	}

	if err := c.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &StageChangesOutput{
		Dirty: map[entity.Domain]bool{
			entity.DomainProfile:     draft.IsDirty(entity.DomainProfile),
			entity.DomainPreferences: draft.IsDirty(entity.DomainPreferences),
			entity.DomainInterface:   draft.IsDirty(entity.DomainInterface),
			entity.DomainAvatar:      draft.IsDirty(entity.DomainAvatar),
		},
		HasChanges: draft.HasAnyChanges(),
	}, nil
}
