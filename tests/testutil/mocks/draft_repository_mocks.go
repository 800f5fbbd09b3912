package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nxank4/website-llct-sub003/internal/domain/entity"
)

// MockDraftRepository is a mock implementation of repository.DraftRepository
type MockDraftRepository struct {
	mock.Mock
}

func NewMockDraftRepository(t *testing.T) *MockDraftRepository {
	m := &MockDraftRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDraftRepository) Find(ctx context.Context, userID uuid.UUID) (*entity.SettingsDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SettingsDraft), args.Error(1)
}

func (m *MockDraftRepository) Save(ctx context.Context, draft *entity.SettingsDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
