package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
)

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	mock.Mock
}

func NewMockProfileService(t *testing.T) *MockProfileService {
	m := &MockProfileService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileService) Fetch(ctx context.Context) (*service.ProfileResource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileResource), args.Error(1)
}

func (m *MockProfileService) Patch(ctx context.Context, patch service.ProfilePatch) (*entity.Profile, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

// MockPreferencesService is a mock implementation of service.PreferencesService
type MockPreferencesService struct {
	mock.Mock
}

func NewMockPreferencesService(t *testing.T) *MockPreferencesService {
	m := &MockPreferencesService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPreferencesService) Fetch(ctx context.Context) (entity.NotificationPreferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.NotificationPreferences), args.Error(1)
}

func (m *MockPreferencesService) Put(ctx context.Context, prefs entity.NotificationPreferences) (entity.NotificationPreferences, error) {
	args := m.Called(ctx, prefs)
	return args.Get(0).(entity.NotificationPreferences), args.Error(1)
}
