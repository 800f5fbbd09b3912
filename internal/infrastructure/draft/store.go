package draft

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// DefaultTTL はドラフトの既定有効期限です
const DefaultTTL = 30 * time.Minute

// Store は repository.DraftRepository のインメモリ実装です
// ドラフトは揮発的な編集状態なのでプロセスローカルに保持し、
// 一定時間操作がなければ自動的に破棄されます
type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewStore は新しいStoreを作成します
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Find はユーザーのドラフトを取得します
func (s *Store) Find(_ context.Context, userID uuid.UUID) (*entity.SettingsDraft, error) {
	v, ok := s.cache.Get(userID.String())
	if !ok {
		return nil, apperror.NewNotFoundError("settings draft")
	}
	return v.(*entity.SettingsDraft), nil
}

// Save はドラフトを保存し、有効期限を延長します
func (s *Store) Save(_ context.Context, draft *entity.SettingsDraft) error {
	s.cache.Set(draft.UserID().String(), draft, s.ttl)
	return nil
}

// Delete はドラフトを破棄します
func (s *Store) Delete(_ context.Context, userID uuid.UUID) error {
	s.cache.Delete(userID.String())
	return nil
}
