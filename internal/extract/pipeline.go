package extract

import (
	"context"
	"log"

	"billscan/internal/domain"
	"billscan/internal/port"
)

// Service sequences the extraction stages for one request.
type Service interface {
	// Run executes fetch -> OCR -> structuring -> cleaning for documentURL.
	// Client-input faults (bad URL, download or decode failure) are
	// returned as errors; every other fault is converted into a failure
	// envelope carrying the usage accumulated before the fault.
	Run(ctx context.Context, documentURL string) (*domain.ExtractionResult, error)
}

type pipeline struct {
	fetcher port.ImageFetcher
	ocr     *TextExtractor
	parser  *StructuredParser
}

// NewService creates the extraction pipeline.
func NewService(fetcher port.ImageFetcher, vision port.VisionModel, text port.TextModel) Service {
	return &pipeline{
		fetcher: fetcher,
		ocr:     NewTextExtractor(vision),
		parser:  NewStructuredParser(text),
	}
}

func (p *pipeline) Run(ctx context.Context, documentURL string) (*domain.ExtractionResult, error) {
	tracker := NewUsageTracker()

	img, err := p.fetcher.Fetch(ctx, documentURL)
	if err != nil {
		// Fetch faults are always client-input class: the model calls
		// have not happened yet and no usage has accrued.
		return nil, err
	}

	ocrText, err := p.ocr.ExtractText(ctx, img, tracker)
	if err != nil {
		return p.failure(err, tracker), nil
	}

	rec, err := p.parser.ParseToStructured(ctx, ocrText, tracker)
	if err != nil {
		return p.failure(err, tracker), nil
	}

	page := PageFromRecord(ValidateAndClean(rec))

	return &domain.ExtractionResult{
		IsSuccess: true,
		Data: domain.ExtractionData{
			PagewiseLineItems: []domain.PageExtraction{page},
			TokenUsage:        tracker.Totals(),
			TotalItemCount:    len(page.BillItems),
		},
	}, nil
}

func (p *pipeline) failure(err error, tracker *UsageTracker) *domain.ExtractionResult {
	log.Printf("extraction pipeline failed: %v", err)
	return &domain.ExtractionResult{
		IsSuccess: false,
		Error:     err.Error(),
		Data: domain.ExtractionData{
			PagewiseLineItems: []domain.PageExtraction{},
			TokenUsage:        tracker.Totals(),
			TotalItemCount:    0,
		},
	}
}
