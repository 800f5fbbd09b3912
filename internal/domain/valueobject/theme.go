package valueobject

import "fmt"

// サポートするテーマ
var supportedThemes = map[string]bool{
	"light": true,
	"dark":  true,
}

// Theme は画面テーマを表す値オブジェクトです
type Theme struct {
	value string
}

// NewTheme は新しいThemeを作成します
// サポートされるテーマ: "light", "dark"
func NewTheme(value string) (Theme, error) {
	if value == "" {
		return Theme{}, fmt.Errorf("theme cannot be empty")
	}

	if !supportedThemes[value] {
		return Theme{}, fmt.Errorf("unsupported theme: %s (supported: light, dark)", value)
	}

	return Theme{value: value}, nil
}

// String はテーマを文字列で返します
func (t Theme) String() string {
	return t.value
}

// Equals は2つのThemeが等しいかを判定します
func (t Theme) Equals(other Theme) bool {
	return t.value == other.value
}

// IsZero は未設定かどうかを判定します
func (t Theme) IsZero() bool {
	return t.value == ""
}

// DefaultTheme はデフォルトのテーマ(light)を返します
func DefaultTheme() Theme {
	return Theme{value: "light"}
}
