package command

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/repository"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// SaveSettingsInput は保存実行の入力を定義します
type SaveSettingsInput struct {
	UserID uuid.UUID
}

// SaveSettingsOutput は保存実行の出力を定義します
type SaveSettingsOutput struct {
	NoChanges  bool
	InProgress bool
	Outcomes   []entity.DomainOutcome
	Locale     string
	Theme      string
}

// SaveSettingsCommand は変更のあるドメインのみをバックエンドへ保存するコマンドです
// プロフィールと通知設定のコミットは並行に実行され、一方の失敗が
// 他方のコミットを妨げることはありません。スナップショットは成功した
// ドメインについてのみ置き換えられます
type SaveSettingsCommand struct {
	draftRepo      repository.DraftRepository
	profileSvc     service.ProfileService
	preferencesSvc service.PreferencesService
	sessionSync    service.SessionSynchronizer
	notifier       service.Notifier
}

// NewSaveSettingsCommand は新しいSaveSettingsCommandを作成します
func NewSaveSettingsCommand(
	draftRepo repository.DraftRepository,
	profileSvc service.ProfileService,
	preferencesSvc service.PreferencesService,
	sessionSync service.SessionSynchronizer,
	notifier service.Notifier,
) *SaveSettingsCommand {
	return &SaveSettingsCommand{
		draftRepo:      draftRepo,
		profileSvc:     profileSvc,
		preferencesSvc: preferencesSvc,
		sessionSync:    sessionSync,
		notifier:       notifier,
	}
}

// Execute は保存を実行します
// 保存中の二重実行はInProgressとして無視されます
func (c *SaveSettingsCommand) Execute(ctx context.Context, input SaveSettingsInput) (*SaveSettingsOutput, error) {
	draft, err := c.draftRepo.Find(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !draft.BeginSave() {
		return &SaveSettingsOutput{InProgress: true}, nil
	}
	defer draft.EndSave()

	plan := draft.SavePlan()
	if plan.Empty() {
		c.notifier.Notify(ctx, input.UserID, service.Notice{
			Level:   service.NoticeInfo,
			Message: "no changes to save",
		})
		return &SaveSettingsOutput{NoChanges: true}, nil
	}

	// バリデーション失敗時はネットワーク呼び出しの前に保存全体を中断する
	if plan.ProfileDirty {
		if err := plan.Profile.Validate(); err != nil {
			return nil, apperror.NewValidationError("profile validation failed", []apperror.FieldError{
				{Field: "display_name", Message: err.Error()},
			})
		}
	}

	var (
		mu       sync.Mutex
		outcomes []entity.DomainOutcome
	)
	record := func(o entity.DomainOutcome) {
		mu.Lock()
		outcomes = append(outcomes, o)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	if plan.ProfileDirty {
		g.Go(func() error {
			c.commitProfile(gctx, input.UserID, draft, plan.Profile, record)
			return nil
		})
	}
	if plan.PreferencesDirty {
		g.Go(func() error {
			c.commitPreferences(gctx, input.UserID, draft, plan.Preferences, record)
			return nil
		})
	}
	_ = g.Wait()

	// 言語とテーマはローカルにのみ適用されるため、他ドメインの
	// コミット結果に関わらず反映する
	if plan.LocalePending || plan.ThemePending {
		localeChanged, themeChanged := draft.ApplyInterface()
		if localeChanged || themeChanged {
			if err := c.sessionSync.SetInterface(ctx, input.UserID, draft.AppliedLocale(), draft.AppliedTheme()); err != nil {
				logger.Warn(ctx, "failed to sync interface settings to session cache", "error", err)
			}
			record(entity.DomainOutcome{Domain: entity.DomainInterface, Status: entity.OutcomeApplied})
		}
		if localeChanged {
			c.notifier.Notify(ctx, input.UserID, service.Notice{
				Level:   service.NoticeSuccess,
				Domain:  entity.DomainInterface,
				Message: "language preference applied",
			})
		}
		if themeChanged {
			c.notifier.Notify(ctx, input.UserID, service.Notice{
				Level:   service.NoticeSuccess,
				Domain:  entity.DomainInterface,
				Message: "theme preference applied",
			})
		}
	}

	if err := c.draftRepo.Save(ctx, draft); err != nil {
		logger.Warn(ctx, "failed to persist settings draft after save", "error", err)
	}

	succeeded := 0
	for _, o := range outcomes {
		if o.Succeeded() {
			succeeded++
		}
	}
	logger.Info(ctx, "settings save completed", "domains", len(outcomes), "succeeded", succeeded)

	return &SaveSettingsOutput{
		Outcomes: outcomes,
		Locale:   draft.AppliedLocale().String(),
		Theme:    draft.AppliedTheme().String(),
	}, nil
}

func (c *SaveSettingsCommand) commitProfile(
	ctx context.Context,
	userID uuid.UUID,
	draft *entity.SettingsDraft,
	profile entity.Profile,
	record func(entity.DomainOutcome),
) {
	committed, err := c.profileSvc.Patch(ctx, service.ProfilePatch{
		DisplayName:  &profile.DisplayName,
		Handle:       &profile.Handle,
		ExternalCode: &profile.ExternalCode,
		Bio:          &profile.Bio,
	})
	if err != nil {
		record(entity.DomainOutcome{Domain: entity.DomainProfile, Status: entity.OutcomeFailed, Err: err})
		c.notifier.Notify(ctx, userID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainProfile,
			Message: "failed to save profile",
		})
		return
	}

	draft.CommitProfile(*committed)
	record(entity.DomainOutcome{Domain: entity.DomainProfile, Status: entity.OutcomeCommitted})

	if err := c.sessionSync.Refresh(ctx, userID); err != nil {
		logger.Warn(ctx, "failed to refresh cached identity after profile save", "error", err)
	}

	c.notifier.Notify(ctx, userID, service.Notice{
		Level:   service.NoticeSuccess,
		Domain:  entity.DomainProfile,
		Message: "profile saved",
	})
}

func (c *SaveSettingsCommand) commitPreferences(
	ctx context.Context,
	userID uuid.UUID,
	draft *entity.SettingsDraft,
	prefs entity.NotificationPreferences,
	record func(entity.DomainOutcome),
) {
	committed, err := c.preferencesSvc.Put(ctx, prefs)
	if err != nil {
		record(entity.DomainOutcome{Domain: entity.DomainPreferences, Status: entity.OutcomeFailed, Err: err})
		c.notifier.Notify(ctx, userID, service.Notice{
			Level:   service.NoticeError,
			Domain:  entity.DomainPreferences,
			Message: "failed to save notification preferences",
		})
		return
	}

	draft.CommitPreferences(committed)
	record(entity.DomainOutcome{Domain: entity.DomainPreferences, Status: entity.OutcomeCommitted})

	c.notifier.Notify(ctx, userID, service.Notice{
		Level:   service.NoticeSuccess,
		Domain:  entity.DomainPreferences,
		Message: "notification preferences saved",
	})
}
