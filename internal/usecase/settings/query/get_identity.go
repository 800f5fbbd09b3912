package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// GetIdentityInput は本人情報照会の入力を定義します
type GetIdentityInput struct {
	UserID uuid.UUID
}

// GetIdentityOutput は本人情報照会の出力を定義します
type GetIdentityOutput struct {
	Identity *entity.Identity
}

// GetIdentityQuery はヘッダー等の表示に使う本人情報を照会するクエリです
// キャッシュミスの場合はバックエンドから再取得します
type GetIdentityQuery struct {
	identities  service.IdentityProvider
	sessionSync service.SessionSynchronizer
}

// NewGetIdentityQuery は新しいGetIdentityQueryを作成します
func NewGetIdentityQuery(identities service.IdentityProvider, sessionSync service.SessionSynchronizer) *GetIdentityQuery {
	return &GetIdentityQuery{identities: identities, sessionSync: sessionSync}
}

// Execute は本人情報照会を実行します
func (q *GetIdentityQuery) Execute(ctx context.Context, input GetIdentityInput) (*GetIdentityOutput, error) {
	identity, err := q.identities.Get(ctx, input.UserID)
	if err == nil {
		return &GetIdentityOutput{Identity: identity}, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	if err := q.sessionSync.Refresh(ctx, input.UserID); err != nil {
		return nil, err
	}

	identity, err = q.identities.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetIdentityOutput{Identity: identity}, nil
}
