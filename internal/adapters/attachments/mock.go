package attachments

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of AttachmentStore
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Save(ctx context.Context, desiredName string, data []byte) (string, error) {
	args := m.Called(ctx, desiredName, data)
	return args.String(0), args.Error(1)
}
