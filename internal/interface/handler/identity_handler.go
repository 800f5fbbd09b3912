package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nxank4/website-llct-sub003/internal/interface/dto/response"
	"github.com/nxank4/website-llct-sub003/internal/interface/middleware"
	"github.com/nxank4/website-llct-sub003/internal/interface/presenter"
	settingsqry "github.com/nxank4/website-llct-sub003/internal/usecase/settings/query"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// IdentityHandler は本人情報表示のHTTPハンドラーです
type IdentityHandler struct {
	getIdentityQuery *settingsqry.GetIdentityQuery
}

// NewIdentityHandler は新しいIdentityHandlerを作成します
func NewIdentityHandler(getIdentityQuery *settingsqry.GetIdentityQuery) *IdentityHandler {
	return &IdentityHandler{getIdentityQuery: getIdentityQuery}
}

// GetIdentity はヘッダー表示用の本人情報を返します
// GET /me/identity
func (h *IdentityHandler) GetIdentity(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	output, err := h.getIdentityQuery.Execute(c.Request().Context(), settingsqry.GetIdentityInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToIdentityResponse(output.Identity))
}
