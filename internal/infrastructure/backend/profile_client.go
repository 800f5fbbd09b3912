package backend

import (
	"context"
	"net/http"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
)

// profilePayload はバックエンドのプロフィールリソース表現です
type profilePayload struct {
	DisplayName  string `json:"display_name"`
	Handle       string `json:"handle"`
	ExternalCode string `json:"external_code"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	Locale       string `json:"locale"`
	Theme        string `json:"theme"`
}

// profilePatchPayload は部分更新のリクエスト表現です
type profilePatchPayload struct {
	DisplayName  *string `json:"display_name,omitempty"`
	Handle       *string `json:"handle,omitempty"`
	ExternalCode *string `json:"external_code,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

// ProfileClient は service.ProfileService のHTTP実装です
type ProfileClient struct {
	client *Client
}

// NewProfileClient は新しいProfileClientを作成します
func NewProfileClient(client *Client) *ProfileClient {
	return &ProfileClient{client: client}
}

// Fetch は現在のプロフィールを取得します
func (c *ProfileClient) Fetch(ctx context.Context) (*service.ProfileResource, error) {
	var payload profilePayload
	if err := c.client.Do(ctx, http.MethodGet, "/users/me/profile", nil, &payload); err != nil {
		return nil, err
	}
	return &service.ProfileResource{
		Profile: payload.toEntity(),
		Locale:  payload.Locale,
		Theme:   payload.Theme,
	}, nil
}

// Patch は部分更新をコミットします
func (c *ProfileClient) Patch(ctx context.Context, patch service.ProfilePatch) (*entity.Profile, error) {
	body := profilePatchPayload{
		DisplayName:  patch.DisplayName,
		Handle:       patch.Handle,
		ExternalCode: patch.ExternalCode,
		Bio:          patch.Bio,
		AvatarURL:    patch.AvatarURL,
	}

	var payload profilePayload
	if err := c.client.Do(ctx, http.MethodPatch, "/users/me/profile", body, &payload); err != nil {
		return nil, err
	}
	profile := payload.toEntity()
	return &profile, nil
}

func (p profilePayload) toEntity() entity.Profile {
	return entity.Profile{
		DisplayName:  p.DisplayName,
		Handle:       p.Handle,
		ExternalCode: p.ExternalCode,
		Bio:          p.Bio,
		AvatarURL:    p.AvatarURL,
	}
}
