package port

import (
	"context"

	"billscan/internal/domain"
)

// TokenCounts holds the token usage reported by a single model call.
type TokenCounts struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// GenerateOutput is the result of one model call. Usage is nil when the
// provider omitted usage metadata from its response.
type GenerateOutput struct {
	Text  string
	Usage *TokenCounts
}

// VisionModel abstracts a vision-capable model that turns an image plus an
// instruction prompt into text.
type VisionModel interface {
	GenerateFromImage(ctx context.Context, img *domain.ImageDocument, prompt string) (*GenerateOutput, error)
}

// TextModel abstracts a text-reasoning model that answers a text-only prompt.
type TextModel interface {
	GenerateFromText(ctx context.Context, prompt string) (*GenerateOutput, error)
}
