package history_test

import (
	"context"
	"testing"
	"time"

	"paste-upload/internal/adapters/repository"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/service/history"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_Recent(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		expected := []domain.UploadRecord{
			{ID: uuid.New(), FileName: "shot.png", Outcome: domain.UploadOutcomeUploaded, CreatedAt: time.Now()},
		}
		mockRepo := repository.NewMockUploadRecordRepository()
		mockRepo.On("ListRecent", ctx, 10).Return(expected, nil)

		service := history.NewHistoryService(mockRepo)

		//Act
		records, err := service.Recent(ctx, 10)

		//Assert
		require.NoError(t, err)
		assert.Equal(t, expected, records)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockRepo := repository.NewMockUploadRecordRepository()
		mockRepo.On("ListRecent", ctx, 50).Return([]domain.UploadRecord{}, nil)

		service := history.NewHistoryService(mockRepo)

		//Act
		_, err := service.Recent(ctx, 0)

		//Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockRepo := repository.NewMockUploadRecordRepository()
		mockRepo.On("ListRecent", ctx, 5).Return([]domain.UploadRecord(nil), assert.AnError)

		service := history.NewHistoryService(mockRepo)

		//Act
		_, err := service.Recent(ctx, 5)

		//Assert
		require.ErrorIs(t, err, assert.AnError)
	})
}
