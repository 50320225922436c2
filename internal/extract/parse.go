package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"billscan/internal/domain"
	"billscan/internal/port"
)

// Record is the loosely-typed structured output of the text model, before
// cleaning. Using a generic map keeps the cleaner total over whatever shape
// the model actually returned.
type Record map[string]interface{}

// StructuredParser is the structuring stage: it embeds the OCR text in the
// extraction prompt, sends it to the text model, and decodes the reply.
type StructuredParser struct {
	text port.TextModel
}

// NewStructuredParser creates the structuring stage.
func NewStructuredParser(text port.TextModel) *StructuredParser {
	return &StructuredParser{text: text}
}

// ParseToStructured converts raw OCR text into a structured record. The
// model reply may be wrapped in markdown code fences despite the prompt;
// a leading ```json or ``` fence and a trailing ``` fence are stripped
// before decoding. On success the tracker is updated with the call's usage.
func (p *StructuredParser) ParseToStructured(ctx context.Context, ocrText string, tracker *UsageTracker) (Record, error) {
	out, err := p.text.GenerateFromText(ctx, BuildLineItemPrompt(ocrText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionService, err)
	}
	tracker.Add(out.Usage)

	jsonText := stripCodeFence(out.Text)

	var rec Record
	if err := json.Unmarshal([]byte(jsonText), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)", domain.ErrParseOutput, err, truncate(jsonText, 500))
	}
	return rec, nil
}

// stripCodeFence removes a leading ```json or ``` marker and a trailing
// ``` marker from the model reply.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
