package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nxank4/website-llct-sub003/internal/infrastructure/backend"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/pkg/jwt"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// JWTAuthMiddleware はJWT認証ミドルウェアを提供します
type JWTAuthMiddleware struct {
	jwtService *jwt.JWTService
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(jwtService *jwt.JWTService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{jwtService: jwtService}
}

// Authenticate は認証ミドルウェアを返します
// 検証済みトークンはバックエンドAPIへの転送用にコンテキストへ保持されます
func (m *JWTAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperror.NewUnauthorizedError("authorization header required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return apperror.NewUnauthorizedError("invalid authorization header format")
			}

			token := parts[1]
			claims, err := m.jwtService.ValidateAccessToken(token)
			if err != nil {
				return apperror.NewUnauthorizedError("invalid or expired token")
			}

			SetUserID(c, claims.UserID.String())

			ctx := c.Request().Context()
			ctx = backend.ContextWithToken(ctx, token)
			ctx = logger.ContextWithUserID(ctx, claims.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
