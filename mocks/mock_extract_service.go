package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billscan/internal/domain"
)

// MockExtractService is a mock implementation of extract.Service.
type MockExtractService struct {
	mock.Mock
}

func (m *MockExtractService) Run(ctx context.Context, documentURL string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
