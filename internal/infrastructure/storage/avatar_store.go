package storage

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
)

// AvatarStore は service.AvatarStorage のMinIO実装です
type AvatarStore struct {
	client *MinIOClient
}

// NewAvatarStore は新しいAvatarStoreを作成します
func NewAvatarStore(client *MinIOClient) *AvatarStore {
	return &AvatarStore{client: client}
}

// Upload は画像をアップロードし、公開URLを返します
func (s *AvatarStore) Upload(ctx context.Context, ownerID uuid.UUID, image valueobject.AvatarImage, r io.Reader) (string, error) {
	key := NewAvatarKey(ownerID, time.Now().Unix(), image.Extension())

	_, err := s.client.Client().PutObject(ctx, s.client.BucketName(), key.String(), r, image.Size(), minio.PutObjectOptions{
		ContentType: image.ContentType(),
	})
	if err != nil {
		return "", apperror.NewStorageError(err)
	}

	return s.publicURL(key.String()), nil
}

func (s *AvatarStore) publicURL(key string) string {
	base := strings.TrimSuffix(s.client.Config().PublicBaseURL, "/")
	return base + "/" + s.client.BucketName() + "/" + key
}
