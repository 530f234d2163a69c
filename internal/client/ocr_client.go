package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"riskprofiler/internal/config"
)

// OCRClient handles communication with a remote OCR server
type OCRClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewOCRClient creates a new OCR client
func NewOCRClient(cfg *config.Config) *OCRClient {
	return &OCRClient{
		baseURL: cfg.OCRServerURL,
		httpClient: &http.Client{
			Timeout: cfg.OCRServerTimeout,
		},
		timeout: cfg.OCRServerTimeout,
	}
}

// ExtractText uploads an image to the OCR server and returns the recognized text
func (oc *OCRClient) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	url := fmt.Sprintf("%s/ocr", oc.baseURL)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="survey"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call ocr server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp struct {
		Text  string `json:"text"`
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if resp.StatusCode != http.StatusOK {
		if json.Unmarshal(body, &apiResp) == nil && apiResp.Error != nil {
			return "", fmt.Errorf("ocr failed: status %d: %s - %s", resp.StatusCode, apiResp.Error.Code, apiResp.Error.Message)
		}
		return "", fmt.Errorf("ocr failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return apiResp.Text, nil
}

// Health checks if the OCR server is healthy
func (oc *OCRClient) Health(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/health", oc.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := oc.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check health: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
