package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/config"
)

const (
	// ServiceName identifies this service in the info and health endpoints.
	ServiceName = "Medical Bill Line Item Extraction API"
	// ServiceVersion is the reported API version.
	ServiceVersion = "1.0.0"
)

// InfoHandler handles the service info and health endpoints.
type InfoHandler struct {
	gemini *config.GeminiConfig
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(gemini *config.GeminiConfig) *InfoHandler {
	return &InfoHandler{gemini: gemini}
}

// Info handles GET /
// @Summary Service info
// @Description Service name, version, and endpoint listing
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *InfoHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"version": ServiceVersion,
		"status":  "running",
		"accepts": "URLs only (http/https)",
		"endpoints": gin.H{
			"/extract-bill-data":  "POST - Extract line items from bill image URL",
			"/health":             "GET - Health check",
			"/swagger/index.html": "GET - Interactive API documentation",
		},
		"example_request": gin.H{
			"document": "https://example.com/medical-bill.png",
		},
	})
}

// Health handles GET /health
// @Summary Health check
// @Description Liveness plus whether the model credential is configured
// @Tags info
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"service":           ServiceName,
		"gemini_configured": h.gemini.Configured(),
	})
}
