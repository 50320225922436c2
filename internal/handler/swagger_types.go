package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ExtractBillRequest represents the extraction request body. Only http(s)
// URLs are accepted; any other field is ignored.
type ExtractBillRequest struct {
	Document string `json:"document" binding:"required" example:"https://example.com/medical-bill.png"`
}

// ErrorResponseBody represents an error response for documentation.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}
