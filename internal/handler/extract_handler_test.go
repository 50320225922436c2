package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billscan/internal/domain"
	"billscan/internal/handler"
	"billscan/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newExtractHandler() (*handler.ExtractHandler, *mocks.MockExtractService) {
	mockSvc := new(mocks.MockExtractService)
	h := handler.NewExtractHandler(mockSvc)
	return h, mockSvc
}

func postExtract(t *testing.T, h *handler.ExtractHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, err = http.NewRequest(http.MethodPost, "/extract-bill-data", bytes.NewReader(raw))
	require.NoError(t, err)
	c.Request.Header.Set("Content-Type", "application/json")

	h.Extract(c)
	return w
}

func TestExtractHandler_Success(t *testing.T) {
	h, mockSvc := newExtractHandler()

	expected := &domain.ExtractionResult{
		IsSuccess: true,
		Data: domain.ExtractionData{
			PagewiseLineItems: []domain.PageExtraction{
				{
					PageNo:   "1",
					PageType: domain.PageTypeBillDetail,
					BillItems: []domain.BillLineItem{
						{ItemName: "Paracetamol 500mg", ItemAmount: 10, ItemRate: 5, ItemQuantity: 2},
					},
				},
			},
			TokenUsage:     domain.TokenUsage{TotalTokens: 25, InputTokens: 17, OutputTokens: 8},
			TotalItemCount: 1,
		},
	}
	mockSvc.On("Run", mock.Anything, "https://example.com/bill.png").Return(expected, nil)

	w := postExtract(t, h, map[string]string{"document": "https://example.com/bill.png"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.ExtractionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsSuccess)
	assert.Equal(t, 1, resp.Data.TotalItemCount)
	require.Len(t, resp.Data.PagewiseLineItems, 1)
	assert.Equal(t, "Paracetamol 500mg", resp.Data.PagewiseLineItems[0].BillItems[0].ItemName)
	mockSvc.AssertExpectations(t)
}

func TestExtractHandler_MissingDocument(t *testing.T) {
	h, mockSvc := newExtractHandler()

	w := postExtract(t, h, map[string]string{"url": "https://example.com/bill.png"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestExtractHandler_ExtraFieldsIgnored(t *testing.T) {
	h, mockSvc := newExtractHandler()
	mockSvc.On("Run", mock.Anything, "https://example.com/bill.png").
		Return(&domain.ExtractionResult{IsSuccess: true, Data: domain.ExtractionData{PagewiseLineItems: []domain.PageExtraction{}}}, nil)

	w := postExtract(t, h, map[string]interface{}{
		"document": "https://example.com/bill.png",
		"pages":    3,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestExtractHandler_InputErrorsAreBadRequest(t *testing.T) {
	cases := map[string]struct {
		err  error
		code string
	}{
		"invalid url": {
			err:  fmt.Errorf("%w: %q", domain.ErrInvalidDocumentURL, "not-a-url"),
			code: "INVALID_DOCUMENT_URL",
		},
		"download failed": {
			err:  fmt.Errorf("%w: context deadline exceeded", domain.ErrImageDownload),
			code: "IMAGE_DOWNLOAD_FAILED",
		},
		"decode failed": {
			err:  fmt.Errorf("%w: image: unknown format", domain.ErrImageDecode),
			code: "IMAGE_DECODE_FAILED",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h, mockSvc := newExtractHandler()
			mockSvc.On("Run", mock.Anything, mock.Anything).Return(nil, tc.err)

			w := postExtract(t, h, map[string]string{"document": "https://example.com/bill.png"})

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp handler.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tc.err.Error())
		})
	}
}

func TestExtractHandler_FailureEnvelopeIs500(t *testing.T) {
	h, mockSvc := newExtractHandler()

	envelope := &domain.ExtractionResult{
		IsSuccess: false,
		Error:     "ocr extraction failed: quota exceeded",
		Data: domain.ExtractionData{
			PagewiseLineItems: []domain.PageExtraction{},
			TokenUsage:        domain.TokenUsage{TotalTokens: 15, InputTokens: 10, OutputTokens: 5},
			TotalItemCount:    0,
		},
	}
	mockSvc.On("Run", mock.Anything, mock.Anything).Return(envelope, nil)

	w := postExtract(t, h, map[string]string{"document": "https://example.com/bill.png"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp domain.ExtractionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsSuccess)
	assert.Equal(t, "ocr extraction failed: quota exceeded", resp.Error)
	assert.Equal(t, 0, resp.Data.TotalItemCount)
	assert.Equal(t, 15, resp.Data.TokenUsage.TotalTokens)
}
