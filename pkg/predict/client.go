package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-priceform/pkg/model"
)

// DefaultEndpoint is where the reference prediction service listens.
const DefaultEndpoint = "http://localhost:5000"

// RequestIDHeader carries a per-request UUID for log correlation.
const RequestIDHeader = "X-Request-ID"

const maxResponseBytes = 1 << 20

// Client issues prediction requests. Each call is exactly one HTTP attempt:
// no retries and no client-side timeout beyond what ctx imposes.
type Client struct {
	predictURL string
	http       *http.Client
	logger     *slog.Logger
	requestID  func() string
}

// New constructs a Client for the service rooted at endpoint.
func New(endpoint string, options ...Option) (*Client, error) {
	predictURL, err := predictURLFor(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		predictURL: predictURL,
		http:       http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
		requestID:  uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// URL reports the full /predict URL the client posts to.
func (c *Client) URL() string {
	return c.predictURL
}

// Predict builds the payload from raw form values and sends it.
func (c *Client) Predict(ctx context.Context, values model.Values) (Result, error) {
	payload, err := BuildPayload(values)
	if err != nil {
		return Result{}, err
	}
	return c.Send(ctx, payload)
}

// Send posts payload and maps the outcome. Failures are *TransportError when
// no usable response arrived and *ServiceError for non-2xx responses.
func (c *Client) Send(ctx context.Context, payload Payload) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("predict: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("predict: request: %w", err)
	}
	id := c.requestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)

	logger := c.logger.With("request_id", id)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("prediction request failed", "error", err, "duration", time.Since(start))
		return Result{}, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}
	logger.Debug("prediction response", "status", resp.StatusCode, "bytes", len(data), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var failure struct {
			Error any `json:"error"`
		}
		if err := json.Unmarshal(data, &failure); err != nil {
			return Result{}, &TransportError{Err: fmt.Errorf("decode error body (status %d): %w", resp.StatusCode, err)}
		}
		return Result{}, &ServiceError{Status: resp.StatusCode, Message: serviceMessage(failure.Error)}
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("decode result: %w", err)}
	}
	return result, nil
}

func predictURLFor(endpoint string) (string, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return "", errors.New("predict: endpoint is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("predict: parse endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("predict: endpoint %q must be http or https", endpoint)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("predict: endpoint %q has no host", endpoint)
	}
	return parsed.JoinPath("predict").String(), nil
}
