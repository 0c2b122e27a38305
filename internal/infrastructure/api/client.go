// Package api implements the HTTP collaborator client for the invoicing
// backend: JSON over a versioned path prefix, with a politeness rate limiter
// and per-request ids.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/invoicehq/invoicer-client/internal/config"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// Client talks to the backend over its versioned JSON API
type Client struct {
	baseURL      string
	prefix       string
	http         *http.Client
	limiter      *rate.Limiter
	emailTimeout time.Duration
	log          zerolog.Logger
}

// NewClient creates a backend client from configuration
func NewClient(cfg *config.APIConfig) *Client {
	return &Client{
		baseURL:      cfg.BaseURL,
		prefix:       cfg.Prefix,
		http:         &http.Client{Timeout: cfg.RequestTimeout},
		limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		emailTimeout: cfg.EmailTimeout,
		log:          logger.WithComponent("api"),
	}
}

// url joins the base URL, prefix, and resource path
func (c *Client) url(path string) string {
	return c.baseURL + c.prefix + path
}

// do performs one request. Non-2xx responses become an APIError carrying the
// status and raw body; a 204 yields an empty success; any other 2xx body is
// decoded as JSON into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.url(path)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("request_id", requestID).Str("method", method).Str("url", url).Err(err).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return apperror.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), url, string(raw))
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// getBytes fetches a binary resource, such as a rendered PDF
func (c *Client) getBytes(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.url(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, apperror.NewAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), url, string(raw))
	}

	return io.ReadAll(resp.Body)
}

// isTimeout reports whether the error came from a deadline rather than the
// collaborator itself
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
