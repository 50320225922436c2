package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billscan/internal/domain"
	"billscan/internal/extract"
	"billscan/internal/port"
	"billscan/mocks"
)

func testImage() *domain.ImageDocument {
	return &domain.ImageDocument{Bytes: []byte("png-bytes"), MIMEType: "image/png", Width: 100, Height: 200}
}

func TestTextExtractor_ReturnsTextVerbatim(t *testing.T) {
	rawText := "  Apollo Hospital \n Paracetamol 500mg  Qty:2  Rate:5.00  Amount:10.00 \n"
	vision := new(mocks.MockVisionModel)
	vision.On("GenerateFromImage", mock.Anything, testImage(), extract.BuildOCRPrompt()).
		Return(&port.GenerateOutput{
			Text:  rawText,
			Usage: &port.TokenCounts{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		}, nil)

	extractor := extract.NewTextExtractor(vision)
	tracker := extract.NewUsageTracker()

	got, err := extractor.ExtractText(context.Background(), testImage(), tracker)

	require.NoError(t, err)
	// No trimming or normalization at this stage.
	assert.Equal(t, rawText, got)
	assert.Equal(t, domain.TokenUsage{TotalTokens: 15, InputTokens: 10, OutputTokens: 5}, tracker.Totals())
	vision.AssertExpectations(t)
}

func TestTextExtractor_ModelFailureIsOCRServiceError(t *testing.T) {
	vision := new(mocks.MockVisionModel)
	vision.On("GenerateFromImage", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	extractor := extract.NewTextExtractor(vision)
	tracker := extract.NewUsageTracker()

	_, err := extractor.ExtractText(context.Background(), testImage(), tracker)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOCRService)
	assert.Equal(t, domain.TokenUsage{}, tracker.Totals())
}
