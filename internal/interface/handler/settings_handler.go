package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/internal/interface/dto/request"
	"github.com/nxank4/website-llct-sub003/internal/interface/dto/response"
	"github.com/nxank4/website-llct-sub003/internal/interface/middleware"
	"github.com/nxank4/website-llct-sub003/internal/interface/presenter"
	settingscmd "github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	settingsqry "github.com/nxank4/website-llct-sub003/internal/usecase/settings/query"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// SettingsHandler は設定画面関連のHTTPハンドラーです
type SettingsHandler struct {
	// Queries
	getSettingsQuery *settingsqry.GetSettingsQuery
	getChangesQuery  *settingsqry.GetChangesQuery

	// Commands
	stageChangesCommand    *settingscmd.StageChangesCommand
	saveSettingsCommand    *settingscmd.SaveSettingsCommand
	uploadAvatarCommand    *settingscmd.UploadAvatarCommand
	removeAvatarCommand    *settingscmd.RemoveAvatarCommand
	restoreSnapshotCommand *settingscmd.RestoreSnapshotCommand
	restoreDefaultsCommand *settingscmd.RestoreDefaultsCommand
}

// NewSettingsHandler は新しいSettingsHandlerを作成します
func NewSettingsHandler(
	getSettingsQuery *settingsqry.GetSettingsQuery,
	getChangesQuery *settingsqry.GetChangesQuery,
	stageChangesCommand *settingscmd.StageChangesCommand,
	saveSettingsCommand *settingscmd.SaveSettingsCommand,
	uploadAvatarCommand *settingscmd.UploadAvatarCommand,
	removeAvatarCommand *settingscmd.RemoveAvatarCommand,
	restoreSnapshotCommand *settingscmd.RestoreSnapshotCommand,
	restoreDefaultsCommand *settingscmd.RestoreDefaultsCommand,
) *SettingsHandler {
	return &SettingsHandler{
		getSettingsQuery:       getSettingsQuery,
		getChangesQuery:        getChangesQuery,
		stageChangesCommand:    stageChangesCommand,
		saveSettingsCommand:    saveSettingsCommand,
		uploadAvatarCommand:    uploadAvatarCommand,
		removeAvatarCommand:    removeAvatarCommand,
		restoreSnapshotCommand: restoreSnapshotCommand,
		restoreDefaultsCommand: restoreDefaultsCommand,
	}
}

// GetSettings は設定画面の初期状態を読み込みます
// GET /me/settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	output, err := h.getSettingsQuery.Execute(c.Request().Context(), settingsqry.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToSettingsResponse(output.Draft))
}

// GetChanges はドメインごとの未保存変更の有無を返します
// GET /me/settings/changes
func (h *SettingsHandler) GetChanges(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	output, err := h.getChangesQuery.Execute(c.Request().Context(), settingsqry.GetChangesInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ChangesResponse{
		Profile:     output.Dirty["profile"],
		Preferences: output.Dirty["preferences"],
		Interface:   output.Dirty["interface"],
		Avatar:      output.Dirty["avatar"],
		HasChanges:  output.HasChanges,
		Saving:      output.Saving,
	})
}

// StageChanges は編集内容を下書きへ反映します
// PATCH /me/settings/draft
func (h *SettingsHandler) StageChanges(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	var req request.StageChangesRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.stageChangesCommand.Execute(c.Request().Context(), settingscmd.StageChangesInput{
		UserID:                  userID,
		DisplayName:             req.DisplayName,
		Handle:                  req.Handle,
		ExternalCode:            req.ExternalCode,
		Bio:                     req.Bio,
		SystemNotifications:     req.SystemNotifications,
		InstructorNotifications: req.InstructorNotifications,
		Locale:                  req.Locale,
		Theme:                   req.Theme,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ChangesResponse{
		Profile:     output.Dirty["profile"],
		Preferences: output.Dirty["preferences"],
		Interface:   output.Dirty["interface"],
		Avatar:      output.Dirty["avatar"],
		HasChanges:  output.HasChanges,
	})
}

// Save は変更のあるドメインをバックエンドへ保存します
// POST /me/settings/save
func (h *SettingsHandler) Save(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	output, err := h.saveSettingsCommand.Execute(c.Request().Context(), settingscmd.SaveSettingsInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.SaveResponse{
		NoChanges:  output.NoChanges,
		InProgress: output.InProgress,
		Outcomes:   response.ToOutcomeResponses(output.Outcomes),
		Locale:     output.Locale,
		Theme:      output.Theme,
	})
}

// UploadAvatar はアバター画像をアップロードして反映します
// POST /me/settings/avatar
func (h *SettingsHandler) UploadAvatar(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperror.NewValidationError("avatar file is required", []apperror.FieldError{
			{Field: "file", Message: "this field is required"},
		})
	}
	if fileHeader.Size > valueobject.MaxAvatarSize {
		return apperror.NewValidationError("invalid avatar file", []apperror.FieldError{
			{Field: "file", Message: "file exceeds the maximum allowed size"},
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.NewInternalError(err)
	}
	defer file.Close()

	output, err := h.uploadAvatarCommand.Execute(c.Request().Context(), settingscmd.UploadAvatarInput{
		UserID:      userID,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.AvatarResponse{
		AvatarURL: output.AvatarURL,
		Profile:   response.ToProfileResponse(output.Profile),
	})
}

// RemoveAvatar はアバターを削除してイニシャル表示へ戻します
// DELETE /me/settings/avatar
func (h *SettingsHandler) RemoveAvatar(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	output, err := h.removeAvatarCommand.Execute(c.Request().Context(), settingscmd.RemoveAvatarInput{
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.AvatarResponse{
		Profile: response.ToProfileResponse(output.Profile),
	})
}

// Restore は指定ドメインの編集内容をスナップショットへ巻き戻します
// POST /me/settings/restore
func (h *SettingsHandler) Restore(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	var req request.RestoreRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.restoreSnapshotCommand.Execute(c.Request().Context(), settingscmd.RestoreSnapshotInput{
		UserID: userID,
		Domain: req.Domain,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToSettingsResponse(output.Draft))
}

// RestoreDefaults は通知設定をシステム既定値へ戻して保存します
// POST /me/settings/defaults
func (h *SettingsHandler) RestoreDefaults(c echo.Context) error {
	userID, err := middleware.GetUserUUID(c)
	if err != nil {
		return apperror.NewUnauthorizedError("invalid token")
	}

	var req request.RestoreDefaultsRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.restoreDefaultsCommand.Execute(c.Request().Context(), settingscmd.RestoreDefaultsInput{
		UserID: userID,
		Domain: req.Domain,
	})
	if err != nil {
		return err
	}

	return presenter.OK(c, response.ToPreferencesResponse(output.Preferences))
}
