package settings

import (
	"context"
	"paste-upload/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	mock.Mock
}

// NewMockSettingsService creates a new MockSettingsService
func NewMockSettingsService() *MockSettingsService {
	return &MockSettingsService{}
}

func (m *MockSettingsService) Current() domain.UploadConfig {
	args := m.Called()
	return args.Get(0).(domain.UploadConfig)
}

func (m *MockSettingsService) Update(ctx context.Context, cfg domain.UploadConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
