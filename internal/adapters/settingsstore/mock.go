package settingsstore

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of SettingsStore
type MockStore struct {
	mock.Mock
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, blob []byte) error {
	args := m.Called(ctx, blob)
	return args.Error(0)
}
