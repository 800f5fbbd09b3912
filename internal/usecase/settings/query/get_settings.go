package query

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

// GetSettingsInput は設定画面読み込みの入力を定義します
type GetSettingsInput struct {
	UserID uuid.UUID
}

// GetSettingsOutput は設定画面読み込みの出力を定義します
type GetSettingsOutput struct {
	Draft *entity.SettingsDraft
}

// GetSettingsQuery は設定画面の初期状態を読み込むクエリです
// 各ドメインをバックエンドから取得し、スナップショットを初期化した
// 新しいドラフトを作成します。既存のドラフトは破棄されます
type GetSettingsQuery struct {
	profileSvc     service.ProfileService
	preferencesSvc service.PreferencesService
	draftRepo      repository.DraftRepository
}

// NewGetSettingsQuery は新しいGetSettingsQueryを作成します
func NewGetSettingsQuery(
	profileSvc service.ProfileService,
	preferencesSvc service.PreferencesService,
	draftRepo repository.DraftRepository,
) *GetSettingsQuery {
	return &GetSettingsQuery{
		profileSvc:     profileSvc,
		preferencesSvc: preferencesSvc,
		draftRepo:      draftRepo,
	}
}

// Execute は設定画面読み込みを実行します
func (q *GetSettingsQuery) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	var (
		resource *service.ProfileResource
		prefs    entity.NotificationPreferences
	)

	// 2つのドメインは独立したリソースなので並行に取得する
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resource, err = q.profileSvc.Fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = q.preferencesSvc.Fetch(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	locale, err := valueobject.NewLocale(resource.Locale)
	if err != nil {
		locale = valueobject.DefaultLocale()
	}
	theme, err := valueobject.NewTheme(resource.Theme)
	if err != nil {
		theme = valueobject.DefaultTheme()
	}

	draft := entity.NewSettingsDraft(input.UserID, resource.Profile, prefs, locale, theme)

	if err := q.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}

	return &GetSettingsOutput{Draft: draft}, nil
}
