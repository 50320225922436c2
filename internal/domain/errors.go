package domain

import "errors"

var (
	// Client-input faults: surfaced to the caller as HTTP 400, never retried.
	ErrInvalidDocumentURL = errors.New("invalid document URL; must start with http:// or https://")
	ErrImageDownload      = errors.New("failed to download image from URL")
	ErrImageDecode        = errors.New("failed to decode downloaded content as an image")

	// Pipeline faults: caught by the orchestrator and converted into a
	// failure envelope carrying the usage accumulated so far.
	ErrOCRService        = errors.New("ocr extraction failed")
	ErrExtractionService = errors.New("line item extraction failed")
	ErrParseOutput       = errors.New("failed to parse model output as JSON")
)

// IsInputError reports whether err belongs to the client-input fault class.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDocumentURL) ||
		errors.Is(err, ErrImageDownload) ||
		errors.Is(err, ErrImageDecode)
}
