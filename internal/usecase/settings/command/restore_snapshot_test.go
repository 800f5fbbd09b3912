package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
	"github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/tests/testutil/mocks"
)

func mustLocale(t *testing.T, s string) valueobject.Locale {
	t.Helper()
	locale, err := valueobject.NewLocale(s)
	require.NoError(t, err)
	return locale
}

func newRestoreSnapshotCommand(t *testing.T) (*command.RestoreSnapshotCommand, *mocks.MockDraftRepository) {
	t.Helper()
	draftRepo := mocks.NewMockDraftRepository(t)
	return command.NewRestoreSnapshotCommand(draftRepo), draftRepo
}

func TestRestoreSnapshotCommand_Execute_ProfileRevertedWithoutNetwork(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newRestoreSnapshotCommand(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	draft.StageProfile(entity.ProfilePatch{DisplayName: strptr("Bob"), Bio: strptr("changed")})
	require.True(t, draft.IsDirty(entity.DomainProfile))

	draftRepo.On("Find", ctx, userID).Return(draft, nil)
	draftRepo.On("Save", ctx, draft).Return(nil)

	output, err := cmd.Execute(ctx, command.RestoreSnapshotInput{UserID: userID, Domain: "profile"})

	require.NoError(t, err)
	assert.False(t, output.Draft.IsDirty(entity.DomainProfile))
	assert.Equal(t, "Alice", output.Draft.Profile().DisplayName)
	assert.Equal(t, "hello", output.Draft.Profile().Bio)
}

func TestRestoreSnapshotCommand_Execute_InterfaceSelectionReverted(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newRestoreSnapshotCommand(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	draft.SelectLocale(mustLocale(t, "en"))
	require.True(t, draft.IsDirty(entity.DomainInterface))

	draftRepo.On("Find", ctx, userID).Return(draft, nil)
	draftRepo.On("Save", ctx, draft).Return(nil)

	output, err := cmd.Execute(ctx, command.RestoreSnapshotInput{UserID: userID, Domain: "interface"})

	require.NoError(t, err)
	assert.False(t, output.Draft.IsDirty(entity.DomainInterface))
	assert.Equal(t, "vi", output.Draft.SelectedLocale().String())
}

func TestRestoreSnapshotCommand_Execute_WhileSaving_Conflict(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newRestoreSnapshotCommand(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	draft.StageProfile(entity.ProfilePatch{DisplayName: strptr("Bob")})
	require.True(t, draft.BeginSave())

	draftRepo.On("Find", ctx, userID).Return(draft, nil)

	_, err := cmd.Execute(ctx, command.RestoreSnapshotInput{UserID: userID, Domain: "profile"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.True(t, draft.IsDirty(entity.DomainProfile))
}

func TestRestoreSnapshotCommand_Execute_UnknownDomain_Rejected(t *testing.T) {
	ctx := context.Background()
	cmd, _ := newRestoreSnapshotCommand(t)

	_, err := cmd.Execute(ctx, command.RestoreSnapshotInput{UserID: uuid.New(), Domain: "bogus"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
}

func TestRestoreSnapshotCommand_Execute_AvatarNotRestorable(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newRestoreSnapshotCommand(t)
	userID := uuid.New()

	draftRepo.On("Find", ctx, userID).Return(buildDraft(userID), nil)

	_, err := cmd.Execute(ctx, command.RestoreSnapshotInput{UserID: userID, Domain: "avatar"})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInvalidRequest, appErr.Code)
}
