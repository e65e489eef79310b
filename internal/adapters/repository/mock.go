package repository

import (
	"context"
	"paste-upload/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockUploadRecordRepository is a mock implementation of UploadRecordRepository
type MockUploadRecordRepository struct {
	mock.Mock
}

// NewMockUploadRecordRepository creates a new MockUploadRecordRepository
func NewMockUploadRecordRepository() *MockUploadRecordRepository {
	return &MockUploadRecordRepository{}
}

func (m *MockUploadRecordRepository) Create(ctx context.Context, record domain.UploadRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUploadRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.UploadRecord), args.Error(1)
}
