package job

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nxank4/website-llct-sub003/internal/infrastructure/storage"
)

func key(owner uuid.UUID, uploadedAt int64) storage.AvatarKey {
	return storage.AvatarKey{OwnerID: owner, UploadedAt: uploadedAt, Token: uuid.New(), Ext: ".png"}
}

func TestSweepTargets_KeepsNewestPerOwner(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	alice := uuid.New()
	bob := uuid.New()

	old := now.Add(-48 * time.Hour).Unix()
	keys := []storage.AvatarKey{
		key(alice, old),
		key(alice, old+60),
		key(alice, old+120), // newest for alice
		key(bob, old),       // only object for bob
	}

	targets := sweepTargets(keys, 24*time.Hour, now)

	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	for _, k := range targets {
		if k.OwnerID != alice {
			t.Errorf("unexpected owner swept: %s", k.OwnerID)
		}
		if k.UploadedAt == old+120 {
			t.Error("newest object must not be swept")
		}
	}
}

func TestSweepTargets_RetentionWindowProtectsRecentUploads(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	owner := uuid.New()

	recent := now.Add(-1 * time.Hour).Unix()
	keys := []storage.AvatarKey{
		key(owner, recent),
		key(owner, recent+60), // newest
	}

	targets := sweepTargets(keys, 24*time.Hour, now)

	if len(targets) != 0 {
		t.Fatalf("objects within retention must be kept, got %d targets", len(targets))
	}
}

func TestSweepTargets_Empty(t *testing.T) {
	if targets := sweepTargets(nil, 24*time.Hour, time.Now()); len(targets) != 0 {
		t.Fatalf("expected no targets, got %d", len(targets))
	}
}
