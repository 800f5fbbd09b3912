package valueobject

import "fmt"

// サポートするロケール
var supportedLocales = map[string]bool{
	"vi": true,
	"en": true,
}

// Locale は表示言語を表す値オブジェクトです
type Locale struct {
	value string
}

// NewLocale は新しいLocaleを作成します
// サポートされるロケール: "vi", "en"
func NewLocale(value string) (Locale, error) {
	if value == "" {
		return Locale{}, fmt.Errorf("locale cannot be empty")
	}

	if !supportedLocales[value] {
		return Locale{}, fmt.Errorf("unsupported locale: %s (supported: vi, en)", value)
	}

	return Locale{value: value}, nil
}

// String はロケールを文字列で返します
func (l Locale) String() string {
	return l.value
}

// Equals は2つのLocaleが等しいかを判定します
func (l Locale) Equals(other Locale) bool {
	return l.value == other.value
}

// IsZero は未設定かどうかを判定します
func (l Locale) IsZero() bool {
	return l.value == ""
}

// DefaultLocale はデフォルトのロケール(vi)を返します
func DefaultLocale() Locale {
	return Locale{value: "vi"}
}
