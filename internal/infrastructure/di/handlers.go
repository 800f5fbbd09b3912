package di

import (
	"github.com/nxank4/website-llct-sub003/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health   *handler.HealthHandler
	Settings *handler.SettingsHandler
	Identity *handler.IdentityHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	// Health Handler
	healthHandler := handler.NewHealthHandler()
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}
	if c.MinIOClient != nil {
		healthHandler.RegisterChecker("minio", c.MinIOClient)
	}

	return &Handlers{
		Health:   healthHandler,
		Settings: newSettingsHandler(c),
		Identity: handler.NewIdentityHandler(c.Settings.GetIdentity),
	}
}

// NewHandlersForTest はテスト用にハンドラーを初期化します（HealthHandlerなし）
func NewHandlersForTest(c *Container) *Handlers {
	return &Handlers{
		Health:   nil,
		Settings: newSettingsHandler(c),
		Identity: handler.NewIdentityHandler(c.Settings.GetIdentity),
	}
}

func newSettingsHandler(c *Container) *handler.SettingsHandler {
	return handler.NewSettingsHandler(
		c.Settings.GetSettings,
		c.Settings.GetChanges,
		c.Settings.StageChanges,
		c.Settings.SaveSettings,
		c.Settings.UploadAvatar,
		c.Settings.RemoveAvatar,
		c.Settings.RestoreSnapshot,
		c.Settings.RestoreDefaults,
	)
}
