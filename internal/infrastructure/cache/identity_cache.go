package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// IdentityTTL は本人情報キャッシュの有効期限です
const IdentityTTL = 24 * time.Hour

// IdentityCache はヘッダー等で表示される本人情報の共有ストアです
// service.SessionSynchronizer と service.IdentityProvider を実装します
type IdentityCache struct {
	store      *Cache
	profileSvc service.ProfileService
}

// NewIdentityCache は新しいIdentityCacheを作成します
func NewIdentityCache(client *redis.Client, profileSvc service.ProfileService) *IdentityCache {
	return &IdentityCache{
		store:      NewCache(client, PrefixIdentity, IdentityTTL),
		profileSvc: profileSvc,
	}
}

// Get はキャッシュ済みの本人情報を取得します
func (c *IdentityCache) Get(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	var identity entity.Identity
	if err := c.store.Get(ctx, userID.String(), &identity); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, apperror.NewNotFoundError("identity")
		}
		return nil, apperror.NewInternalError(fmt.Errorf("failed to read identity cache: %w", err))
	}
	return &identity, nil
}

// Refresh は本人情報をバックエンドから再取得してキャッシュを更新します
// 既存エントリのロケール/テーマは保持されます
func (c *IdentityCache) Refresh(ctx context.Context, userID uuid.UUID) error {
	resource, err := c.profileSvc.Fetch(ctx)
	if err != nil {
		return err
	}

	identity := entity.Identity{
		UserID:      userID,
		DisplayName: resource.Profile.DisplayName,
		AvatarURL:   resource.Profile.AvatarURL,
		Initials:    resource.Profile.Initials(),
		Locale:      resource.Locale,
		Theme:       resource.Theme,
		RefreshedAt: time.Now(),
	}
	if cached, err := c.Get(ctx, userID); err == nil {
		if cached.Locale != "" {
			identity.Locale = cached.Locale
		}
		if cached.Theme != "" {
			identity.Theme = cached.Theme
		}
	}

	return c.set(ctx, userID, identity)
}

// SetInterface は適用済みのロケール/テーマをキャッシュへ反映します
// キャッシュが空の場合は Refresh を経由して埋めます
func (c *IdentityCache) SetInterface(ctx context.Context, userID uuid.UUID, locale valueobject.Locale, theme valueobject.Theme) error {
	cached, err := c.Get(ctx, userID)
	if apperror.IsNotFound(err) {
		if err := c.Refresh(ctx, userID); err != nil {
			return err
		}
		cached, err = c.Get(ctx, userID)
	}
	if err != nil {
		return err
	}

	cached.Locale = locale.String()
	cached.Theme = theme.String()
	cached.RefreshedAt = time.Now()
	return c.set(ctx, userID, *cached)
}

func (c *IdentityCache) set(ctx context.Context, userID uuid.UUID, identity entity.Identity) error {
	if err := c.store.Set(ctx, userID.String(), identity); err != nil {
		return apperror.NewInternalError(fmt.Errorf("failed to write identity cache: %w", err))
	}
	return nil
}
