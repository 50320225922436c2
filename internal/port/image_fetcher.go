package port

import (
	"context"

	"billscan/internal/domain"
)

// ImageFetcher downloads a bill image from a URL and validates that it
// decodes as an image.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (*domain.ImageDocument, error)
}
