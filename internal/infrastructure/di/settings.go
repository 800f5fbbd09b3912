package di

import (
	settingscmd "github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	settingsqry "github.com/nxank4/website-llct-sub003/internal/usecase/settings/query"
)

// SettingsUseCases はSettings関連のUseCaseを保持します
type SettingsUseCases struct {
	// Queries
	GetSettings *settingsqry.GetSettingsQuery
	GetChanges  *settingsqry.GetChangesQuery
	GetIdentity *settingsqry.GetIdentityQuery

	// Commands
	StageChanges    *settingscmd.StageChangesCommand
	SaveSettings    *settingscmd.SaveSettingsCommand
	UploadAvatar    *settingscmd.UploadAvatarCommand
	RemoveAvatar    *settingscmd.RemoveAvatarCommand
	RestoreSnapshot *settingscmd.RestoreSnapshotCommand
	RestoreDefaults *settingscmd.RestoreDefaultsCommand
}

// NewSettingsUseCases は新しいSettingsUseCasesを作成します
func NewSettingsUseCases(c *Container) *SettingsUseCases {
	return &SettingsUseCases{
		// Queries
		GetSettings: settingsqry.NewGetSettingsQuery(
			c.ProfileSvc,
			c.PreferencesSvc,
			c.DraftRepo,
		),
		GetChanges: settingsqry.NewGetChangesQuery(
			c.DraftRepo,
		),
		GetIdentity: settingsqry.NewGetIdentityQuery(
			c.IdentityCache,
			c.IdentityCache,
		),

		// Commands
		StageChanges: settingscmd.NewStageChangesCommand(
			c.DraftRepo,
		),
		SaveSettings: settingscmd.NewSaveSettingsCommand(
			c.DraftRepo,
			c.ProfileSvc,
			c.PreferencesSvc,
			c.IdentityCache,
			c.Notifier,
		),
		UploadAvatar: settingscmd.NewUploadAvatarCommand(
			c.DraftRepo,
			c.AvatarStorage,
			c.ProfileSvc,
			c.IdentityCache,
			c.Notifier,
		),
		RemoveAvatar: settingscmd.NewRemoveAvatarCommand(
			c.DraftRepo,
			c.ProfileSvc,
			c.IdentityCache,
			c.Notifier,
		),
		RestoreSnapshot: settingscmd.NewRestoreSnapshotCommand(
			c.DraftRepo,
		),
		RestoreDefaults: settingscmd.NewRestoreDefaultsCommand(
			c.DraftRepo,
			c.PreferencesSvc,
			c.Notifier,
		),
	}
}
