package mocks

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nxank4/website-llct-sub003/internal/domain/valueobject"
)

// MockAvatarStorage is a mock implementation of service.AvatarStorage
type MockAvatarStorage struct {
	mock.Mock
}

func NewMockAvatarStorage(t *testing.T) *MockAvatarStorage {
	m := &MockAvatarStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAvatarStorage) Upload(ctx context.Context, ownerID uuid.UUID, image valueobject.AvatarImage, r io.Reader) (string, error) {
	args := m.Called(ctx, ownerID, image, r)
	return args.String(0), args.Error(1)
}
