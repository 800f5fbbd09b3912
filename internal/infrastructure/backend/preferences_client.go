package backend

import (
	"context"
	"net/http"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// preferencesPayload はバックエンドの通知設定リソース表現です
type preferencesPayload struct {
	System     bool `json:"system"`
	Instructor bool `json:"instructor"`
	General    bool `json:"general"`
	Alert      bool `json:"alert"`
}

// PreferencesClient は service.PreferencesService のHTTP実装です
type PreferencesClient struct {
	client *Client
}

// NewPreferencesClient は新しいPreferencesClientを作成します
func NewPreferencesClient(client *Client) *PreferencesClient {
	return &PreferencesClient{client: client}
}

// Fetch は現在の通知設定を取得します
func (c *PreferencesClient) Fetch(ctx context.Context) (entity.NotificationPreferences, error) {
	var payload preferencesPayload
	if err := c.client.Do(ctx, http.MethodGet, "/users/me/notification-preferences", nil, &payload); err != nil {
		return entity.NotificationPreferences{}, err
	}
	return payload.toEntity(), nil
}

// Put は通知設定オブジェクトを置き換えます
func (c *PreferencesClient) Put(ctx context.Context, prefs entity.NotificationPreferences) (entity.NotificationPreferences, error) {
	body := preferencesPayload{
		System:     prefs.System,
		Instructor: prefs.Instructor,
		General:    prefs.General,
		Alert:      prefs.Alert,
	}

	var payload preferencesPayload
	if err := c.client.Do(ctx, http.MethodPut, "/users/me/notification-preferences", body, &payload); err != nil {
		return entity.NotificationPreferences{}, err
	}
	return payload.toEntity(), nil
}

func (p preferencesPayload) toEntity() entity.NotificationPreferences {
	return entity.NotificationPreferences{
		System:     p.System,
		Instructor: p.Instructor,
		General:    p.General,
		Alert:      p.Alert,
	}
}
