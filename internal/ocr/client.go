package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
)

// Config holds connection settings for the external OCR service.
type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client calls the external OCR service over HTTP. The engine itself is out
// of scope; we only ship bytes out and validated results back.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// Result is the parsed, schema-validated OCR response.
type Result struct {
	Text       string   `json:"text"`
	Confidence float32  `json:"confidence"`
	Pages      int      `json:"pages,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Extract reads the stored document and runs it through the OCR endpoint.
func (c *Client) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read document: %w", err)
	}

	req := map[string]any{
		"document": base64.StdEncoding.EncodeToString(data),
		"format":   constants.NormalizeExt(filepath.Ext(path)),
	}
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	body, status, err := c.sendJSON(ctx, c.cfg.Endpoint, req, headers)
	if err != nil {
		return Result{}, err
	}
	if status < 200 || status >= 300 {
		return Result{}, fmt.Errorf("ocr service returned status %d", status)
	}

	if err := ValidateResultPayload(body); err != nil {
		return Result{}, fmt.Errorf("ocr response rejected: %w", err)
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return Result{}, fmt.Errorf("decode ocr response: %w", err)
	}

	c.logger.Info("ocr.extract.ok",
		"path", path,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

// sendJSON posts a JSON body and returns the raw response body and status.
func (c *Client) sendJSON(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		c.logger.Error("ocr.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.logger.Error("ocr.http.build_request_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ocr.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func(rc io.ReadCloser) {
		if err := rc.Close(); err != nil {
			c.logger.Warn("ocr.http.close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return out, resp.StatusCode, nil
}
