package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
	"github.com/nxank4/website-llct-sub003/internal/domain/service"
	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

// MockSessionSynchronizer is a mock implementation of service.SessionSynchronizer
type MockSessionSynchronizer struct {
	mock.Mock
}

func NewMockSessionSynchronizer(t *testing.T) *MockSessionSynchronizer {
	m := &MockSessionSynchronizer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSessionSynchronizer) Refresh(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionSynchronizer) SetInterface(ctx context.Context, userID uuid.UUID, locale valueobject.Locale, theme valueobject.Theme) error {
	args := m.Called(ctx, userID, locale, theme)
	return args.Error(0)
}

// MockIdentityProvider is a mock implementation of service.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func NewMockIdentityProvider(t *testing.T) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdentityProvider) Get(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Identity), args.Error(1)
}

// MockNotifier is a mock implementation of service.Notifier.
// Calls are recorded so tests can assert on emitted notices without
// pre-registering every expectation.
type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier(t *testing.T) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) Notify(ctx context.Context, userID uuid.UUID, notice service.Notice) {
	m.Called(ctx, userID, notice)
}

// Notices returns all notices recorded so far.
func (m *MockNotifier) Notices() []service.Notice {
	var notices []service.Notice
	for _, call := range m.Calls {
		if call.Method == "Notify" {
			notices = append(notices, call.Arguments.Get(2).(service.Notice))
		}
	}
	return notices
}
