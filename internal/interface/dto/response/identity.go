package response

import (
	"time"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// IdentityResponse はヘッダー表示用の本人情報レスポンス
type IdentityResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Initials    string    `json:"initials"`
	Locale      string    `json:"locale"`
	Theme       string    `json:"theme"`
	RefreshedAt time.Time `json:"refreshed_at"`
}

// ToIdentityResponse はエンティティをレスポンスに変換します
func ToIdentityResponse(identity *entity.Identity) IdentityResponse {
	return IdentityResponse{
		UserID:      identity.UserID.String(),
		DisplayName: identity.DisplayName,
		AvatarURL:   identity.AvatarURL,
		Initials:    identity.Initials,
		Locale:      identity.Locale,
		Theme:       identity.Theme,
		RefreshedAt: identity.RefreshedAt,
	}
}
