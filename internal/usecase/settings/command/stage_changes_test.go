package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/usecase/settings/command"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/tests/testutil/mocks"
)

func newStageChangesCommand(t *testing.T) (*command.StageChangesCommand, *mocks.MockDraftRepository) {
	t.Helper()
	draftRepo := mocks.NewMockDraftRepository(t)
	return command.NewStageChangesCommand(draftRepo), draftRepo
}

func TestStageChangesCommand_Execute_MarksEditedDomainsDirty(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newStageChangesCommand(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	draftRepo.On("Find", ctx, userID).Return(draft, nil)
	draftRepo.On("Save", ctx, draft).Return(nil)

	output, err := cmd.Execute(ctx, command.StageChangesInput{
		UserID:              userID,
		DisplayName:         strptr("Bob"),
		SystemNotifications: boolptr(false),
		Theme:               strptr("dark"),
	})

	require.NoError(t, err)
	assert.True(t, output.HasChanges)
	assert.True(t, output.Dirty[entity.DomainProfile])
	assert.True(t, output.Dirty[entity.DomainPreferences])
	assert.True(t, output.Dirty[entity.DomainInterface])
	assert.False(t, output.Dirty[entity.DomainAvatar])

	// disabling system notifications drags alert down with it
	assert.False(t, draft.Preferences().Alert)
}

func TestStageChangesCommand_Execute_WhitespaceOnlyEdit_NotDirty(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newStageChangesCommand(t)
	userID := uuid.New()

	draft := buildDraft(userID)
	draftRepo.On("Find", ctx, userID).Return(draft, nil)
	draftRepo.On("Save", ctx, draft).Return(nil)

	output, err := cmd.Execute(ctx, command.StageChangesInput{
		UserID:      userID,
		DisplayName: strptr("  Alice  "),
	})

	require.NoError(t, err)
	assert.False(t, output.HasChanges)
	assert.False(t, output.Dirty[entity.DomainProfile])
}

func TestStageChangesCommand_Execute_InvalidLocale_Rejected(t *testing.T) {
	ctx := context.Background()
	cmd, draftRepo := newStageChangesCommand(t)
	userID := uuid.New()

	draftRepo.On("Find", ctx, userID).Return(buildDraft(userID), nil)

	output, err := cmd.Execute(ctx, command.StageChangesInput{
		UserID: userID,
		Locale: strptr("de"),
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsValidation(err))
}
