package request

// StageChangesRequest は設定下書き更新リクエスト
// nilのフィールドは変更なしを意味します
type StageChangesRequest struct {
	DisplayName             *string `json:"display_name" validate:"omitempty,max=100"`
	Handle                  *string `json:"handle" validate:"omitempty,handle"`
	ExternalCode            *string `json:"external_code" validate:"omitempty,max=32"`
	Bio                     *string `json:"bio" validate:"omitempty,max=500"`
	SystemNotifications     *bool   `json:"system_notifications"`
	InstructorNotifications *bool   `json:"instructor_notifications"`
	Locale                  *string `json:"locale" validate:"omitempty,oneof=vi en"`
	Theme                   *string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// RestoreRequest はスナップショット復元リクエスト
type RestoreRequest struct {
	Domain string `json:"domain" validate:"required"`
}

// RestoreDefaultsRequest は既定値復元リクエスト
type RestoreDefaultsRequest struct {
	Domain string `json:"domain" validate:"required"`
}
