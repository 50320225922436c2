package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/extract"
)

// ExtractHandler handles the bill extraction endpoint.
type ExtractHandler struct {
	extractService extract.Service
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(extractService extract.Service) *ExtractHandler {
	return &ExtractHandler{extractService: extractService}
}

// Extract handles POST /extract-bill-data
// @Summary Extract line items from a medical bill image
// @Description Download the bill image from the given URL, OCR it with a vision model, structure the text with a text model, and return validated monetary line items with token usage
// @Tags extraction
// @Accept json
// @Produce json
// @Param request body ExtractBillRequest true "Bill image URL"
// @Success 200 {object} domain.ExtractionResult "Extraction succeeded"
// @Failure 400 {object} ErrorResponseBody "Invalid URL, or image download/decode failed"
// @Failure 500 {object} domain.ExtractionResult "OCR or structuring failed; envelope carries partial token usage"
// @Router /extract-bill-data [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	var req ExtractBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "document is required and must be a string URL")
		return
	}

	result, err := h.extractService.Run(c.Request.Context(), req.Document)
	if err != nil {
		HandleError(c, err)
		return
	}

	if !result.IsSuccess {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
