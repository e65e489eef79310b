package upload_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"paste-upload/internal/adapters/httpclient"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	settingsservice "paste-upload/internal/core/service/settings"
	"paste-upload/internal/core/service/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUploadOnlyService(sender port.RequestSender, cfg domain.UploadConfig) port.UploadService {
	mockSettings := settingsservice.NewMockSettingsService()
	mockSettings.On("Current").Return(cfg)

	return upload.NewUploadService(nil, sender, mockSettings, nil, nil, nil, nil, discardLogger())
}

func TestUploadService_Upload_Success(t *testing.T) {

	//Arrange
	ctx := context.Background()
	cfg := domain.UploadConfig{
		Endpoint:      "https://api.example.com/upload",
		FileFieldName: "image",
		ResponsePath:  "data.link",
	}
	target := domain.UploadTarget{Name: "shot.png", MimeType: "image/png", Data: []byte("png-bytes")}

	var sent port.Request
	mockSender := httpclient.NewMockRequestSender()
	mockSender.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(port.Request)
		}).
		Return(&port.Response{StatusCode: 200, Body: []byte(`{"data":{"link":"https://cdn.example.com/shot.png"}}`)}, nil)

	service := newUploadOnlyService(mockSender, cfg)

	//Act
	url, err := service.Upload(ctx, target)

	//Assert
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shot.png", url)
	assert.Equal(t, http.MethodPost, sent.Method)
	assert.Equal(t, "https://api.example.com/upload", sent.URL)
	assert.Contains(t, sent.Headers["Content-Type"], "multipart/form-data; boundary=")
	assert.Contains(t, string(sent.Body), `name="image"`)
	assert.Contains(t, string(sent.Body), `filename="shot.png"`)
	mockSender.AssertExpectations(t)
}

func TestUploadService_Upload_HeaderHandling(t *testing.T) {

	t.Run("configured headers are sent, blank keys skipped, later duplicate wins", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		cfg := domain.UploadConfig{
			Endpoint:     "https://api.example.com/upload",
			ResponsePath: "url",
			Headers: []domain.HeaderPair{
				{Key: "Authorization", Value: "Bearer old"},
				{Key: "   ", Value: "ignored"},
				{Key: "", Value: "ignored too"},
				{Key: "Authorization", Value: "Bearer new"},
				{Key: "X-Source", Value: "editor"},
			},
		}

		var sent port.Request
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(port.Request)
			}).
			Return(&port.Response{StatusCode: 200, Body: []byte(`{"url":"https://x/y"}`)}, nil)

		service := newUploadOnlyService(mockSender, cfg)

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.NoError(t, err)
		assert.Equal(t, "Bearer new", sent.Headers["Authorization"])
		assert.Equal(t, "editor", sent.Headers["X-Source"])
		assert.NotContains(t, sent.Headers, "")
		assert.NotContains(t, sent.Headers, "   ")
	})

	t.Run("configured Content-Type loses to the multipart boundary", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		cfg := domain.UploadConfig{
			Endpoint:     "https://api.example.com/upload",
			ResponsePath: "url",
			Headers: []domain.HeaderPair{
				{Key: "Content-Type", Value: "application/json"},
			},
		}

		var sent port.Request
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(port.Request)
			}).
			Return(&port.Response{StatusCode: 200, Body: []byte(`{"url":"https://x/y"}`)}, nil)

		service := newUploadOnlyService(mockSender, cfg)

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.NoError(t, err)
		assert.Contains(t, sent.Headers["Content-Type"], "multipart/form-data; boundary=")
	})

	t.Run("blank field name falls back to file", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		cfg := domain.UploadConfig{
			Endpoint:      "https://api.example.com/upload",
			FileFieldName: "   ",
			ResponsePath:  "url",
		}

		var sent port.Request
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(port.Request)
			}).
			Return(&port.Response{StatusCode: 200, Body: []byte(`{"url":"https://x/y"}`)}, nil)

		service := newUploadOnlyService(mockSender, cfg)

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.NoError(t, err)
		assert.Contains(t, string(sent.Body), `name="file"`)
	})
}

func TestUploadService_Upload_Errors(t *testing.T) {

	t.Run("transport error surfaces unchanged", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(nil, assert.AnError)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "url"})

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(&port.Response{StatusCode: 500, Body: []byte(`boom`)}, nil)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "url"})

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.ErrorIs(t, err, domain.ErrServerStatus)
		assert.Equal(t, "Server responded with status 500", err.Error())
	})

	t.Run("redirect status is a failure too", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(&port.Response{StatusCode: 301, Body: nil}, nil)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "url"})

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.ErrorIs(t, err, domain.ErrServerStatus)
		assert.Equal(t, "Server responded with status 301", err.Error())
	})

	t.Run("body is not JSON", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(&port.Response{StatusCode: 200, Body: []byte(`<html>`)}, nil)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "url"})

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.ErrorIs(t, err, domain.ErrResponseParse)
	})

	t.Run("path does not resolve", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(&port.Response{StatusCode: 200, Body: []byte(`{"data":{}}`)}, nil)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "data.link"})

		//Act
		_, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.ErrorIs(t, err, domain.ErrResponseExtract)
		assert.Equal(t, `Could not extract URL from response using path "data.link"`, err.Error())
	})

	t.Run("201 is accepted", func(t *testing.T) {
		//Arrange
		ctx := context.Background()
		mockSender := httpclient.NewMockRequestSender()
		mockSender.On("Do", ctx, mock.Anything).Return(&port.Response{StatusCode: 201, Body: []byte(`{"url":"https://x/y"}`)}, nil)

		service := newUploadOnlyService(mockSender, domain.UploadConfig{Endpoint: "https://x", ResponsePath: "url"})

		//Act
		url, err := service.Upload(ctx, domain.UploadTarget{Name: "a.png"})

		//Assert
		require.NoError(t, err)
		assert.Equal(t, "https://x/y", url)
	})
}
