package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billscan/internal/domain"
)

// APIResponse is the envelope for auxiliary endpoints and input errors.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. The error's own message is kept: for input faults the underlying
// cause (bad scheme, HTTP status, decode failure) is what the caller needs.
func MapDomainError(err error) (status int, code string) {
	switch {
	case errors.Is(err, domain.ErrInvalidDocumentURL):
		return http.StatusBadRequest, "INVALID_DOCUMENT_URL"
	case errors.Is(err, domain.ErrImageDownload):
		return http.StatusBadRequest, "IMAGE_DOWNLOAD_FAILED"
	case errors.Is(err, domain.ErrImageDecode):
		return http.StatusBadRequest, "IMAGE_DECODE_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, err.Error())
}
