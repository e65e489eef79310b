package history

import (
	"context"
	"paste-upload/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockHistoryService is a mock implementation of HistoryService
type MockHistoryService struct {
	mock.Mock
}

// NewMockHistoryService creates a new MockHistoryService
func NewMockHistoryService() *MockHistoryService {
	return &MockHistoryService{}
}

func (m *MockHistoryService) Recent(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
