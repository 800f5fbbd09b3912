package query_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/usecase/settings/query"
	"github.com/nxank4/website-llct-sub003/pkg/apperror"
	"github.com/nxank4/website-llct-sub003/tests/testutil/mocks"
)

type getSettingsTestDeps struct {
	profileSvc     *mocks.MockProfileService
	preferencesSvc *mocks.MockPreferencesService
	draftRepo      *mocks.MockDraftRepository
}

func newGetSettingsTestDeps(t *testing.T) *getSettingsTestDeps {
	t.Helper()
	return &getSettingsTestDeps{
		profileSvc:     mocks.NewMockProfileService(t),
		preferencesSvc: mocks.NewMockPreferencesService(t),
		draftRepo:      mocks.NewMockDraftRepository(t),
	}
}

func (d *getSettingsTestDeps) newQuery() *query.GetSettingsQuery {
	return query.NewGetSettingsQuery(d.profileSvc, d.preferencesSvc, d.draftRepo)
}

func TestGetSettingsQuery_Execute_SeedsCleanDraft(t *testing.T) {
	ctx := context.Background()
	deps := newGetSettingsTestDeps(t)
	userID := uuid.New()

	resource := &service.ProfileResource{
		Profile: entity.Profile{DisplayName: "Alice", Handle: "alice"},
		Locale:  "en",
		Theme:   "dark",
	}
	// stored preferences may violate the coupling, the draft normalizes them
	prefs := entity.NotificationPreferences{System: true, Instructor: false, General: true, Alert: false}

	deps.profileSvc.On("Fetch", mock.Anything).Return(resource, nil)
	deps.preferencesSvc.On("Fetch", mock.Anything).Return(prefs, nil)
	deps.draftRepo.On("Save", ctx, mock.Anything).Return(nil)

	output, err := deps.newQuery().Execute(ctx, query.GetSettingsInput{UserID: userID})

	require.NoError(t, err)
	draft := output.Draft
	assert.Equal(t, userID, draft.UserID())
	assert.Equal(t, "Alice", draft.Profile().DisplayName)
	assert.Equal(t, "en", draft.AppliedLocale().String())
	assert.Equal(t, "dark", draft.AppliedTheme().String())
	assert.False(t, draft.HasAnyChanges())

	normalized := draft.Preferences()
	assert.True(t, normalized.Alert)
	assert.False(t, normalized.General)
}

func TestGetSettingsQuery_Execute_UnknownLocaleFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	deps := newGetSettingsTestDeps(t)

	resource := &service.ProfileResource{
		Profile: entity.Profile{DisplayName: "Alice"},
		Locale:  "fr",
		Theme:   "sepia",
	}

	deps.profileSvc.On("Fetch", mock.Anything).Return(resource, nil)
	deps.preferencesSvc.On("Fetch", mock.Anything).Return(entity.DefaultNotificationPreferences(), nil)
	deps.draftRepo.On("Save", ctx, mock.Anything).Return(nil)

	output, err := deps.newQuery().Execute(ctx, query.GetSettingsInput{UserID: uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, "vi", output.Draft.AppliedLocale().String())
	assert.Equal(t, "light", output.Draft.AppliedTheme().String())
}

func TestGetSettingsQuery_Execute_BackendFailure_Propagated(t *testing.T) {
	ctx := context.Background()
	deps := newGetSettingsTestDeps(t)

	deps.profileSvc.On("Fetch", mock.Anything).
		Return(nil, apperror.NewNetworkError(context.DeadlineExceeded))
	deps.preferencesSvc.On("Fetch", mock.Anything).
		Return(entity.DefaultNotificationPreferences(), nil).Maybe()

	output, err := deps.newQuery().Execute(ctx, query.GetSettingsInput{UserID: uuid.New()})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, apperror.IsNetwork(err))
	deps.draftRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
