package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/greenstem/retail-core/internal/platform/apierr"
	"github.com/greenstem/retail-core/internal/platform/httpx"
	"github.com/greenstem/retail-core/internal/platform/logger"
)

// Client is the JSON-over-HTTP transport shared by all backing-service
// clients. Transient failures (timeouts, 5xx, 429) are retried here with
// backoff; terminal statuses are mapped into the apierr taxonomy and returned
// to the caller without retry.
type Client struct {
	log        *logger.Logger
	name       string
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

func New(log *logger.Logger, name string, cfg Config) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("missing base URL for %s service", name)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Client{
		log:        log.With("client", name),
		name:       name,
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
	}, nil
}

// HTTPError is a non-2xx reply from a backing service.
type HTTPError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "<empty body>"
	}
	return fmt.Sprintf("%s service http %d: %s", e.Service, e.StatusCode, msg)
}

func (e *HTTPError) HTTPStatusCode() int { return e.StatusCode }

type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Do performs one logical call. body and out may be nil; out is filled from
// the JSON response when non-nil. The returned error is always a
// *apierr.Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	backoff := 500 * time.Millisecond

	var resp *http.Response
	var raw []byte
	var err error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return apierr.Internal("%s service: %v", c.name, ctx.Err())
		}

		resp, raw, err = c.doOnce(ctx, method, path, body)
		if err == nil {
			break
		}
		if !httpx.IsRetryableError(err) || attempt == c.maxRetries {
			return c.mapError(err)
		}

		sleepFor := httpx.JitterSleep(httpx.RetryAfterDuration(resp, backoff, 5*time.Second))
		c.log.Warn("request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)
		time.Sleep(sleepFor)
		backoff *= 2
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apierr.Internal("%s service: decode response: %v", c.name, err)
		}
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := &HTTPError{Service: c.name, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			he.Message = env.Message
		}
		return resp, raw, he
	}
	return resp, raw, nil
}

func (c *Client) mapError(err error) *apierr.Error {
	var he *HTTPError
	if errors.As(err, &he) {
		msg := he.Message
		if msg == "" {
			msg = he.Error()
		}
		return apierr.FromStatusCode(he.StatusCode, errors.New(msg))
	}
	return apierr.Internal("%s service unreachable: %v", c.name, err)
}
