package command_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/tests/testutil/mocks"
)

type uploadAvatarTestDeps struct {
	draftRepo     *mocks.MockDraftRepository
	avatarStorage *mocks.MockAvatarStorage
	profileSvc    *mocks.MockProfileService
	sessionSync   *mocks.MockSessionSynchronizer
	notifier      *mocks.MockNotifier
}

func newUploadAvatarTestDeps(t *testing.T) *uploadAvatarTestDeps {
	t.Helper()
	return &uploadAvatarTestDeps{
		draftRepo:     mocks.NewMockDraftRepository(t),
		avatarStorage: mocks.NewMockAvatarStorage(t),
		profileSvc:    mocks.NewMockProfileService(t),
		sessionSync:   mocks.NewMockSessionSynchronizer(t),
		notifier:      mocks.NewMockNotifier(t),
	}
}

func (d *uploadAvatarTestDeps) newCommand() *command.UploadAvatarCommand {
	return command.NewUploadAvatarCommand(d.draftRepo, d.avatarStorage, d.profileSvc, d.sessionSync, d.notifier)
}

func TestUploadAvatarCommand_Execute_Success(t *testing.T) {
	ctx := context.Background()
	deps := newUploadAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	body := bytes.NewReader([]byte("fake-image-bytes"))
	url := "https://media.example.com/avatars/" + userID.String() + "/123-abc.jpg"
	committed := entity.Profile{DisplayName: "Alice", Handle: "alice", Bio: "hello", AvatarURL: url}

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.draftRepo.On("Save", ctx, draft).Return(nil)
	deps.avatarStorage.On("Upload", ctx, userID, mock.Anything, body).Return(url, nil)
	deps.profileSvc.On("Patch", ctx, mock.MatchedBy(func(p service.ProfilePatch) bool {
		return p.AvatarURL != nil && *p.AvatarURL == url && p.DisplayName == nil
	})).Return(&committed, nil)
	deps.profileSvc.On("Fetch", ctx).Return(&service.ProfileResource{Profile: committed, Locale: "vi", Theme: "light"}, nil)
	deps.sessionSync.On("Refresh", ctx, userID).Return(nil)
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.UploadAvatarInput{
		UserID:      userID,
		ContentType: "image/jpeg",
		Size:        64 * 1024,
		Body:        body,
	})

	require.NoError(t, err)
	assert.Equal(t, url, output.AvatarURL)
	assert.Equal(t, url, draft.Profile().AvatarURL)
	assert.False(t, draft.IsDirty(entity.DomainProfile))
}

func TestUploadAvatarCommand_Execute_OversizedFile_RejectedBeforeUpload(t *testing.T) {
	ctx := context.Background()
	deps := newUploadAvatarTestDeps(t)
	userID := uuid.New()

	deps.draftRepo.On("Find", ctx, userID).Return(buildDraft(userID), nil)

	output, err := deps.newCommand().Execute(ctx, command.UploadAvatarInput{
		UserID:      userID,
		ContentType: "image/jpeg",
		Size:        8 * 1024 * 1024,
		Body:        bytes.NewReader(nil),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsValidation(err))
	deps.avatarStorage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	deps.profileSvc.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything)
}

func TestUploadAvatarCommand_Execute_NonImageFile_Rejected(t *testing.T) {
	ctx := context.Background()
	deps := newUploadAvatarTestDeps(t)
	userID := uuid.New()

	deps.draftRepo.On("Find", ctx, userID).Return(buildDraft(userID), nil)

	_, err := deps.newCommand().Execute(ctx, command.UploadAvatarInput{
		UserID:      userID,
		ContentType: "application/pdf",
		Size:        1024,
		Body:        bytes.NewReader(nil),
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	deps.avatarStorage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatarCommand_Execute_ProfileCommitFails_ProfileUnchanged(t *testing.T) {
	ctx := context.Background()
	deps := newUploadAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	body := bytes.NewReader([]byte("fake-image-bytes"))
	url := "https://media.example.com/avatars/" + userID.String() + "/123-abc.png"

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.avatarStorage.On("Upload", ctx, userID, mock.Anything, body).Return(url, nil)
	deps.profileSvc.On("Patch", ctx, mock.Anything).
		Return(nil, apperror.NewCommitError("avatar rejected", 422))
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.UploadAvatarInput{
		UserID:      userID,
		ContentType: "image/png",
		Size:        2048,
		Body:        body,
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsCommit(err))

	// the uploaded object stays orphaned, visible profile keeps the old avatar
	assert.Empty(t, draft.Profile().AvatarURL)
	notices := deps.notifier.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, service.NoticeError, notices[0].Level)
}

func TestUploadAvatarCommand_Execute_RefetchFails_CommitResponseUsed(t *testing.T) {
	ctx := context.Background()
	deps := newUploadAvatarTestDeps(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	body := bytes.NewReader([]byte("fake-image-bytes"))
	url := "https://media.example.com/avatars/" + userID.String() + "/456-def.webp"
	committed := entity.Profile{DisplayName: "Alice", Handle: "alice", Bio: "hello", AvatarURL: url}

	deps.draftRepo.On("Find", ctx, userID).Return(draft, nil)
	deps.draftRepo.On("Save", ctx, draft).Return(nil)
	deps.avatarStorage.On("Upload", ctx, userID, mock.Anything, body).Return(url, nil)
	deps.profileSvc.On("Patch", ctx, mock.Anything).Return(&committed, nil)
	deps.profileSvc.On("Fetch", ctx).Return(nil, apperror.NewNetworkError(context.DeadlineExceeded))
	deps.sessionSync.On("Refresh", ctx, userID).Return(nil)
	deps.notifier.On("Notify", mock.Anything, userID, mock.Anything).Return()

	output, err := deps.newCommand().Execute(ctx, command.UploadAvatarInput{
		UserID:      userID,
		ContentType: "image/webp",
		Size:        4096,
		Body:        body,
	})

	require.NoError(t, err)
	assert.Equal(t, url, output.AvatarURL)
	assert.Equal(t, url, draft.ProfileSnapshot().AvatarURL)
}
