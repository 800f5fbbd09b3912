package response

import (
	"time"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// ProfileResponse はプロフィールのレスポンス表現
type ProfileResponse struct {
	DisplayName  string `json:"display_name"`
	Handle       string `json:"handle,omitempty"`
	ExternalCode string `json:"external_code,omitempty"`
	Bio          string `json:"bio,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	Initials     string `json:"initials"`
}

// PreferencesResponse は通知設定のレスポンス表現
type PreferencesResponse struct {
	System     bool `json:"system"`
	Instructor bool `json:"instructor"`
	General    bool `json:"general"`
	Alert      bool `json:"alert"`
}

// InterfaceResponse はロケール/テーマのレスポンス表現
type InterfaceResponse struct {
	Locale string `json:"locale"`
	Theme  string `json:"theme"`
}

// ChangesResponse はドメインごとの未保存変更の有無
type ChangesResponse struct {
	Profile     bool `json:"profile"`
	Preferences bool `json:"preferences"`
	Interface   bool `json:"interface"`
	Avatar      bool `json:"avatar"`
	HasChanges  bool `json:"has_changes"`
	Saving      bool `json:"saving"`
}

// SettingsResponse は設定画面全体のレスポンス
type SettingsResponse struct {
	Profile     ProfileResponse     `json:"profile"`
	Preferences PreferencesResponse `json:"preferences"`
	Interface   InterfaceResponse   `json:"interface"`
	Changes     ChangesResponse     `json:"changes"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// DomainOutcomeResponse は保存処理における1ドメインの結果
type DomainOutcomeResponse struct {
	Domain string `json:"domain"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// SaveResponse は保存実行のレスポンス
type SaveResponse struct {
	NoChanges  bool                    `json:"no_changes,omitempty"`
	InProgress bool                    `json:"in_progress,omitempty"`
	Outcomes   []DomainOutcomeResponse `json:"outcomes"`
	Locale     string                  `json:"locale,omitempty"`
	Theme      string                  `json:"theme,omitempty"`
}

// AvatarResponse はアバター操作のレスポンス
type AvatarResponse struct {
	AvatarURL string          `json:"avatar_url,omitempty"`
	Profile   ProfileResponse `json:"profile"`
}

// ToProfileResponse はエンティティをレスポンスに変換します
func ToProfileResponse(profile entity.Profile) ProfileResponse {
	return ProfileResponse{
		DisplayName:  profile.DisplayName,
		Handle:       profile.Handle,
		ExternalCode: profile.ExternalCode,
		Bio:          profile.Bio,
		AvatarURL:    profile.AvatarURL,
		Initials:     profile.Initials(),
	}
}

// ToPreferencesResponse はエンティティをレスポンスに変換します
func ToPreferencesResponse(prefs entity.NotificationPreferences) PreferencesResponse {
	return PreferencesResponse{
		System:     prefs.System,
		Instructor: prefs.Instructor,
		General:    prefs.General,
		Alert:      prefs.Alert,
	}
}

// ToSettingsResponse はドラフトを設定画面レスポンスに変換します
func ToSettingsResponse(draft *entity.SettingsDraft) SettingsResponse {
	return SettingsResponse{
		Profile:     ToProfileResponse(draft.Profile()),
		Preferences: ToPreferencesResponse(draft.Preferences()),
		Interface: InterfaceResponse{
			Locale: draft.SelectedLocale().String(),
			Theme:  draft.SelectedTheme().String(),
		},
		Changes:   ToChangesResponse(draft),
		UpdatedAt: draft.UpdatedAt(),
	}
}

// ToChangesResponse はドラフトから変更状態レスポンスを作成します
func ToChangesResponse(draft *entity.SettingsDraft) ChangesResponse {
	return ChangesResponse{
		Profile:     draft.IsDirty(entity.DomainProfile),
		Preferences: draft.IsDirty(entity.DomainPreferences),
		Interface:   draft.IsDirty(entity.DomainInterface),
		Avatar:      draft.IsDirty(entity.DomainAvatar),
		HasChanges:  draft.HasAnyChanges(),
		Saving:      draft.Saving(),
	}
}

// ToOutcomeResponses はドメイン結果をレスポンスに変換します
func ToOutcomeResponses(outcomes []entity.DomainOutcome) []DomainOutcomeResponse {
	responses := make([]DomainOutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		r := DomainOutcomeResponse{
			Domain: string(o.Domain),
			Status: string(o.Status),
		}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		responses = append(responses, r)
	}
	return responses
}
