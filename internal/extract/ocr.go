package extract

import (
	"context"
	"fmt"

	"billscan/internal/domain"
	"billscan/internal/port"
)

// TextExtractor is the OCR stage: it sends the bill image to the vision
// model and returns the extracted text verbatim.
type TextExtractor struct {
	vision port.VisionModel
}

// NewTextExtractor creates the OCR stage.
func NewTextExtractor(vision port.VisionModel) *TextExtractor {
	return &TextExtractor{vision: vision}
}

// ExtractText runs OCR on img. Any failure from the model call is fatal for
// the request; there is no local fallback. On success the tracker is
// updated with the call's usage.
func (e *TextExtractor) ExtractText(ctx context.Context, img *domain.ImageDocument, tracker *UsageTracker) (string, error) {
	out, err := e.vision.GenerateFromImage(ctx, img, BuildOCRPrompt())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCRService, err)
	}
	tracker.Add(out.Usage)
	return out.Text, nil
}
