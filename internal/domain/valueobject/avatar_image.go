package valueobject

import (
	"errors"
	"strings"
)

// MaxAvatarSize はアバター画像の最大サイズ（5MB）です
const MaxAvatarSize = 5 * 1024 * 1024

var (
	ErrAvatarNotImage = errors.New("avatar must be an image file")
	ErrAvatarEmpty    = errors.New("avatar file is empty")
	ErrAvatarTooLarge = errors.New("avatar must be at most 5MB")
)

// AvatarImage はアップロード対象のアバター画像を表す値オブジェクトです
// I/Oを行う前に MIME タイプとサイズを検証します
type AvatarImage struct {
	contentType string
	size        int64
}

// NewAvatarImage は新しいAvatarImageを作成します
func NewAvatarImage(contentType string, size int64) (AvatarImage, error) {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(normalized, ";"); idx != -1 {
		normalized = strings.TrimSpace(normalized[:idx])
	}

	if !strings.HasPrefix(normalized, "image/") {
		return AvatarImage{}, ErrAvatarNotImage
	}

	if size <= 0 {
		return AvatarImage{}, ErrAvatarEmpty
	}

	if size > MaxAvatarSize {
		return AvatarImage{}, ErrAvatarTooLarge
	}

	return AvatarImage{contentType: normalized, size: size}, nil
}

// ContentType はMIMEタイプを返します
func (a AvatarImage) ContentType() string {
	return a.contentType
}

// Size はバイトサイズを返します
func (a AvatarImage) Size() int64 {
	return a.size
}

// Extension はMIMEタイプから推定した拡張子を返します
func (a AvatarImage) Extension() string {
	switch a.contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
