package domain

// BillLineItem is a single billed product or service extracted from a bill.
// ItemAmount is the net amount after discounts; the soft expectation is
// ItemAmount ≈ ItemRate * ItemQuantity, but it is not enforced here.
type BillLineItem struct {
	ItemName     string  `json:"item_name"`
	ItemAmount   float64 `json:"item_amount"`
	ItemRate     float64 `json:"item_rate"`
	ItemQuantity float64 `json:"item_quantity"`
}

// PageExtraction holds the line items extracted from one bill page.
type PageExtraction struct {
	PageNo    string         `json:"page_no"`
	PageType  PageType       `json:"page_type"`
	BillItems []BillLineItem `json:"bill_items"`
}

// TokenUsage is the token consumption accumulated across the model calls
// of a single request.
type TokenUsage struct {
	TotalTokens  int `json:"total_tokens"`
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// ExtractionData is the payload of an extraction response.
type ExtractionData struct {
	PagewiseLineItems []PageExtraction `json:"pagewise_line_items"`
	TokenUsage        TokenUsage       `json:"token_usage"`
	TotalItemCount    int              `json:"total_item_count"`
}

// ExtractionResult is the response envelope for one extraction request.
// On failure IsSuccess is false, Error carries the fault message, and Data
// holds empty items with whatever usage was accumulated before the fault.
type ExtractionResult struct {
	IsSuccess bool           `json:"is_success"`
	Error     string         `json:"error,omitempty"`
	Data      ExtractionData `json:"data"`
}

// ImageDocument is a downloaded and decode-validated bill image.
type ImageDocument struct {
	Bytes    []byte
	MIMEType string
	Width    int
	Height   int
}
