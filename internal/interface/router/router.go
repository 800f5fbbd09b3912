package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nxank4/website-llct-sub003/internal/infrastructure/di"
	"github.com/nxank4/website-llct-sub003/internal/interface/middleware"
	"github.com/nxank4/website-llct-sub003/internal/interface/presenter"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1")

	// Debug route
	api.GET("/", func(c echo.Context) error {
		return presenter.OK(c, map[string]string{
			"message": "LLCT Settings API v1",
		})
	})

	meGroup := api.Group("/me",
		r.middlewares.JWTAuth.Authenticate(),
		r.middlewares.RateLimit.ByUser(middleware.RateLimitAPIDefault),
	)

	meGroup.GET("/identity", r.handlers.Identity.GetIdentity)

	settingsGroup := meGroup.Group("/settings")
	settingsGroup.GET("", r.handlers.Settings.GetSettings)
	settingsGroup.GET("/changes", r.handlers.Settings.GetChanges)
	settingsGroup.PATCH("/draft", r.handlers.Settings.StageChanges)
	settingsGroup.POST("/save", r.handlers.Settings.Save,
		r.middlewares.RateLimit.ByUser(middleware.RateLimitSettingsSave))
	settingsGroup.POST("/avatar", r.handlers.Settings.UploadAvatar,
		r.middlewares.RateLimit.ByUser(middleware.RateLimitAvatarUpload))
	settingsGroup.DELETE("/avatar", r.handlers.Settings.RemoveAvatar)
	settingsGroup.POST("/restore", r.handlers.Settings.Restore)
	settingsGroup.POST("/defaults", r.handlers.Settings.RestoreDefaults)
}
