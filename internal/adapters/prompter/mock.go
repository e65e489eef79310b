package prompter

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChoicePrompter is a mock implementation of ChoicePrompter
type MockChoicePrompter struct {
	mock.Mock
}

// NewMockChoicePrompter creates a new MockChoicePrompter
func NewMockChoicePrompter() *MockChoicePrompter {
	return &MockChoicePrompter{}
}

func (m *MockChoicePrompter) ConfirmUpload(ctx context.Context, fileName string) (bool, error) {
	args := m.Called(ctx, fileName)
	return args.Bool(0), args.Error(1)
}
