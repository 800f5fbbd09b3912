package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/tests/testutil/mocks"
)

type removeAvatarTestDeps struct {
	draftRepo   *mocks.MockDraftRepository
	profileSvc  *mocks.MockProfileService
	sessionSync *mocks.MockSessionSynchronizer
	notifier    *mocks.MockNotifier
}

func newRemoveAvatarTestDeps(t *testing.T) *removeAvatarTestDeps {
	t.Helper()
	return &removeAvatarTestDeps{
		draftRepo:   mocks.NewMockDraftRepository(t),
		profileSvc:  mocks.NewMockProfileService(t),
		sessionSync: mocks.NewMockSessionSynchronizer(t),
		notifier:    mocks.NewMockNotifier(t),
	}
}

func (d *removeAvatarTestDeps) newCommand() *command.RemoveAvatarCommand {
	return command.NewRemoveAvatarCommand(d.draftRepo, d.profileSvc, d.sessionSync, d.notifier)
}

func buildDraftWithAvatar(userID uuid.UUID, url string) *entity.SettingsDraft {
	profile := entity.Profile{DisplayName: "Alice", Handle: "alice", AvatarURL: url}
	return entity.NewSettingsDraft(
		userID, profile,
		entity.DefaultNotificationPreferences(),
		valueobject.DefaultLocale(), valueobject.DefaultTheme(),
	)
}

func TestRemoveAvatarCommand_Execute_Success(t *testing.T) {
	ctx := context.Background()
	deps := newRemoveAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraftWithAvatar(userID, "https://media.example.com/avatars/old.jpg")
	committed := entity.Profile{DisplayName: "Alice", Handle: "alice"}

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.draftRepo.On("Save", ctx, draft).Return(nil)
	deps.profileSvc.On("Patch", ctx, mock.MatchedBy(func(p service.ProfilePatch) bool {
		return p.AvatarURL != nil && *p.AvatarURL == ""
	})).Return(&committed, nil)
	deps.profileSvc.On("Fetch", ctx).
		Return(&service.ProfileResource{Profile: committed, Locale: "vi", Theme: "light"}, nil)
	deps.sessionSync.On("Refresh", ctx, userID).Return(nil)
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.RemoveAvatarInput{UserID: userID})

	require.NoError(t, err)
	assert.False(t, output.Profile.HasAvatar())
	assert.Equal(t, "A", output.Profile.Initials())
}

func TestRemoveAvatarCommand_Execute_SnapshotReconciledFromRefetch(t *testing.T) {
	ctx := context.Background()
	deps := newRemoveAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraftWithAvatar(userID, "https://media.example.com/avatars/old.jpg")
	committed := entity.Profile{DisplayName: "Alice", Handle: "alice"}
	// the backend may normalize fields on its side; the refetched state wins
	refetched := entity.Profile{DisplayName: "Alice", Handle: "alice", Bio: "server-side bio"}

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.draftRepo.On("Save", ctx, draft).Return(nil)
	deps.profileSvc.On("Patch", ctx, mock.Anything).Return(&committed, nil)
	deps.profileSvc.On("Fetch", ctx).
		Return(&service.ProfileResource{Profile: refetched, Locale: "vi", Theme: "light"}, nil)
	deps.sessionSync.On("Refresh", ctx, userID).Return(nil)
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	_, err := deps.newCommand().Execute(ctx, command.RemoveAvatarInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, refetched, draft.ProfileSnapshot())
	assert.False(t, draft.Profile().HasAvatar())
}

func TestRemoveAvatarCommand_Execute_RefetchFails_CommitResponseUsed(t *testing.T) {
	ctx := context.Background()
	deps := newRemoveAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraftWithAvatar(userID, "https://media.example.com/avatars/old.jpg")
	committed := entity.Profile{DisplayName: "Alice", Handle: "alice"}

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.draftRepo.On("Save", ctx, draft).Return(nil)
	deps.profileSvc.On("Patch", ctx, mock.Anything).Return(&committed, nil)
	deps.profileSvc.On("Fetch", ctx).
		Return(nil, apperror.NewNetworkError(context.DeadlineExceeded))
	deps.sessionSync.On("Refresh", ctx, userID).Return(nil)
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	_, err := deps.newCommand().Execute(ctx, command.RemoveAvatarInput{UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, committed, draft.ProfileSnapshot())
	assert.False(t, draft.Profile().HasAvatar())
}

func TestRemoveAvatarCommand_Execute_NoAvatar_Rejected(t *testing.T) {
	ctx := context.Background()
	deps := newRemoveAvatarTestDeps(t)
	userID := uuid.New()

	deps.draftRepo.On("Find", ctx, userID).Return(buildDraftWithAvatar(userID, ""), nil)

	_, err := deps.newCommand().Execute(ctx, command.RemoveAvatarInput{UserID: userID})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
	deps.profileSvc.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
}

func TestRemoveAvatarCommand_Execute_CommitFails_AvatarKept(t *testing.T) {
	ctx := context.Background()
	deps := newRemoveAvatarTestDeps(t)
	userID := uuid.New()

	url := "https://media.example.com/avatars/old.jpg"
	draft := buildDraftWithAvatar(userID, url)

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.profileSvc.On("Patch", ctx, mock.Anything).
		Return(nil, apperror.NewNetworkError(context.DeadlineExceeded))
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	_, err := deps.newCommand().Execute(ctx, command.RemoveAvatarInput{UserID: userID})

	require.Error(t, err)
	assert.Equal(t, url, draft.Profile().AvatarURL)
}
