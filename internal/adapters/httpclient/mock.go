package httpclient

import (
	"context"
	"paste-upload/internal/core/port"

	"github.com/stretchr/testify/mock"
)

// MockRequestSender is a mock implementation of RequestSender
type MockRequestSender struct {
	mock.Mock
}

// NewMockRequestSender creates a new MockRequestSender
func NewMockRequestSender() *MockRequestSender {
	return &MockRequestSender{}
}

func (m *MockRequestSender) Do(ctx context.Context, req port.Request) (*port.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.Response), args.Error(1)
}
