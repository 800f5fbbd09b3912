package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/nxank4/website-llct-sub003/internal/infrastructure/storage"
	"github.com/nxank4/website-llct-sub003/pkg/logger"
)

// AvatarSweepJob is a background job that removes superseded avatar objects.
//
// Avatar uploads commit to storage before the profile update; when the
// profile update fails, or when a user uploads a new avatar, the older
// objects stay behind. Object keys embed the upload timestamp, so the
// newest object per owner is always the live one and everything older
// past the retention window can be deleted.
type AvatarSweepJob struct {
	client    *storage.MinIOClient
	interval  time.Duration
	retention time.Duration
}

// NewAvatarSweepJob creates a new AvatarSweepJob.
func NewAvatarSweepJob(client *storage.MinIOClient) *AvatarSweepJob {
	return &AvatarSweepJob{
		client:    client,
		interval:  24 * time.Hour,
		retention: 24 * time.Hour,
	}
}

// Start runs the sweep on a daily ticker loop until context is cancelled.
func (j *AvatarSweepJob) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.run(ctx)
		}
	}
}

func (j *AvatarSweepJob) run(ctx context.Context) {
	bucket := j.client.BucketName()

	var keys []storage.AvatarKey
	for obj := range j.client.Client().ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    "avatars/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			logger.Error(ctx, "avatar sweep: list objects failed", "error", obj.Err)
			return
		}
		key, err := storage.ParseAvatarKey(obj.Key)
		if err != nil {
			// 想定外のキーは触らない
			continue
		}
		keys = append(keys, key)
	}

	targets := sweepTargets(keys, j.retention, time.Now())
	if len(targets) == 0 {
		return
	}

	removed := 0
	for _, key := range targets {
		if err := j.client.Client().RemoveObject(ctx, bucket, key.String(), minio.RemoveObjectOptions{}); err != nil {
			logger.Warn(ctx, "avatar sweep: remove object failed", "key", key.String(), "error", err)
			continue
		}
		removed++
	}

	logger.Info(ctx, "avatar sweep completed", "candidates", len(targets), "removed", removed)
}

// sweepTargets returns the keys safe to delete: for each owner, every
// object except the newest one, as long as it is older than the retention
// window. Objects inside the window are kept because an upload may still
// be mid-commit.
func sweepTargets(keys []storage.AvatarKey, retention time.Duration, now time.Time) []storage.AvatarKey {
	newest := make(map[uuid.UUID]int64)
	for _, k := range keys {
		if k.UploadedAt > newest[k.OwnerID] {
			newest[k.OwnerID] = k.UploadedAt
		}
	}

	cutoff := now.Add(-retention).Unix()

	var targets []storage.AvatarKey
	for _, k := range keys {
		if k.UploadedAt == newest[k.OwnerID] {
			continue
		}
		if k.UploadedAt > cutoff {
			continue
		}
		targets = append(targets, k)
	}
	return targets
}
