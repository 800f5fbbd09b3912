package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
)

// GetChangesInput は未保存変更照会の入力を定義します
type GetChangesInput struct {
	UserID uuid.UUID
}

// GetChangesOutput は未保存変更照会の出力を定義します
type GetChangesOutput struct {
	Dirty      map[entity.Domain]bool
	HasChanges bool
	Saving     bool
}

// GetChangesQuery はドメインごとの未保存変更の有無を照会するクエリです
type GetChangesQuery struct {
	draftRepo repository.DraftRepository
}

// NewGetChangesQuery は新しいGetChangesQueryを作成します
func NewGetChangesQuery(draftRepo repository.DraftRepository) *GetChangesQuery {
	return &GetChangesQuery{draftRepo: draftRepo}
}

// Execute は未保存変更照会を実行します
func (q *GetChangesQuery) Execute(ctx context.Context, input GetChangesInput) (*GetChangesOutput, error) {
	draft, err := q.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	dirty := map[entity.Domain]bool{
		entity.DomainProfile:     draft.IsDirty(entity.DomainProfile),
		entity.DomainPreferences: draft.IsDirty(entity.DomainPreferences),
		entity.DomainInterface:   draft.IsDirty(entity.DomainInterface),
		entity.DomainAvatar:      draft.IsDirty(entity.DomainAvatar),
	}

	return &GetChangesOutput{
		Dirty:      dirty,
		HasChanges: draft.HasAnyChanges(),
		Saving:     draft.Saving(),
	}, nil
}
