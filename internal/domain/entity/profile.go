package entity

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrDisplayNameRequired = errors.New("display name must not be empty")

// Profile はプロフィールドメインの編集状態を表します
// バックエンドのプロフィールリソースに対応します
type Profile struct {
	DisplayName  string
	Handle       string
	ExternalCode string
	Bio          string
	AvatarURL    string
}

// Trimmed は各文字列フィールドの前後空白を除去したコピーを返します
// ダーティ判定は常にこの正規化後の値で行います
func (p Profile) Trimmed() Profile {
	return Profile{
		DisplayName:  strings.TrimSpace(p.DisplayName),
		Handle:       strings.TrimSpace(p.Handle),
		ExternalCode: strings.TrimSpace(p.ExternalCode),
		Bio:          strings.TrimSpace(p.Bio),
		AvatarURL:    strings.TrimSpace(p.AvatarURL),
	}
}

// Equal はトリム後の構造比較を行います
// 末尾空白だけの編集はダーティとして扱われません
func (p Profile) Equal(other Profile) bool {
	return p.Trimmed() == other.Trimmed()
}

// Validate はコミット前の検証を行います
// 表示名はトリム後に空であってはなりません
func (p Profile) Validate() error {
	if strings.TrimSpace(p.DisplayName) == "" {
		return ErrDisplayNameRequired
	}
	return nil
}

// Initials は表示名から導出したイニシャルを返します
// アバター画像が未設定の場合のフォールバック表示に使われます
func (p Profile) Initials() string {
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return "?"
	}

	words := strings.Fields(name)
	var b strings.Builder
	for i, word := range words {
		if i >= 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// HasAvatar はアバター画像が設定されているかを判定します
func (p Profile) HasAvatar() bool {
	return strings.TrimSpace(p.AvatarURL) != ""
}
