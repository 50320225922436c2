package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billscan/internal/port"
)

// MockTextModel is a mock implementation of port.TextModel.
type MockTextModel struct {
	mock.Mock
}

func (m *MockTextModel) GenerateFromText(ctx context.Context, prompt string) (*port.GenerateOutput, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.GenerateOutput), args.Error(1)
}
