package entity

// NotificationPreferences は通知設定ドメインを表します
// system と alert は後方互換のため別フィールドとして保存されますが、
// 利用者には1つのスイッチとして提示されます
type NotificationPreferences struct {
	System     bool `json:"system"`
	Instructor bool `json:"instructor"`
	General    bool `json:"general"`
	Alert      bool `json:"alert"`
}

// Normalize はフィールド間の結合ルールを適用した結果を返します
//  1. alert は常に system に追従する
//  2. general は廃止済みフィールドであり常に false
//
// この関数は冪等です
func (p NotificationPreferences) Normalize() NotificationPreferences {
	p.Alert = p.System
	p.General = false
	return p
}

// Equal は構造比較を行います
func (p NotificationPreferences) Equal(other NotificationPreferences) bool {
	return p == other
}

// DefaultNotificationPreferences は通知設定の既定値を返します
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		System:     true,
		Instructor: true,
		General:    false,
		Alert:      true,
	}
}
