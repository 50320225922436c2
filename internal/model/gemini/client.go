package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"billscan/internal/config"
	"billscan/internal/domain"
	"billscan/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.VisionModel and port.TextModel against Google's
// Gemini generateContent API. A single Client is configured at startup and
// shared read-only across concurrent requests.
type Client struct {
	apiKey          string
	visionModel     string
	textModel       string
	visionEndpoint  string
	textEndpoint    string
	maxOutputTokens int
	client          *http.Client
}

// NewClient creates a Gemini client from configuration.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing both model calls at a
// custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	visionModel := cfg.VisionModel
	if visionModel == "" {
		visionModel = "gemini-2.5-flash"
	}
	textModel := cfg.TextModel
	if textModel == "" {
		textModel = visionModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 16384
	}
	visionEndpoint := endpoint
	textEndpoint := endpoint
	if endpoint == "" {
		visionEndpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, visionModel)
		textEndpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, textModel)
	}
	return &Client{
		apiKey:          cfg.APIKey,
		visionModel:     visionModel,
		textModel:       textModel,
		visionEndpoint:  visionEndpoint,
		textEndpoint:    textEndpoint,
		maxOutputTokens: maxTokens,
		client:          &http.Client{Timeout: timeout},
	}
}

// GenerateFromImage sends the image plus the instruction prompt to the
// vision model and returns the raw text reply.
func (c *Client) GenerateFromImage(ctx context.Context, img *domain.ImageDocument, prompt string) (*port.GenerateOutput, error) {
	parts := []map[string]interface{}{
		{
			"inline_data": map[string]interface{}{
				"mime_type": img.MIMEType,
				"data":      base64.StdEncoding.EncodeToString(img.Bytes),
			},
		},
		{
			"text": prompt,
		},
	}
	return c.generate(ctx, c.visionEndpoint, parts)
}

// GenerateFromText sends a text-only prompt to the text model and returns
// the raw text reply.
func (c *Client) GenerateFromText(ctx context.Context, prompt string) (*port.GenerateOutput, error) {
	parts := []map[string]interface{}{
		{
			"text": prompt,
		},
	}
	return c.generate(ctx, c.textEndpoint, parts)
}

func (c *Client) generate(ctx context.Context, endpoint string, parts []map[string]interface{}) (*port.GenerateOutput, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": c.maxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// generateResponse models the Gemini API response.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

func parseResponse(body []byte) (*port.GenerateOutput, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}

	out := &port.GenerateOutput{
		Text: resp.Candidates[0].Content.Parts[0].Text,
	}
	if resp.UsageMetadata != nil {
		out.Usage = &port.TokenCounts{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		}
	}
	return out, nil
}
