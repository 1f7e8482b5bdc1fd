// Package fetch contains the source adapters: a retrying HTTP client, the
// token-authenticated operations webservice and the Apps-Script sheet
// endpoints. Adapters return loosely-typed records; validation lives in
// the schema package.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"andescapital/cxc-etl/internal/logging"
)

// Retry/backoff bounds for outbound calls. Exhausting the attempts
// propagates the last transport error; adapters never return partial data
// on transport failure.
const (
	DefaultMaxAttempts = 3
	DefaultTimeout     = 120 * time.Second

	backoffInitial = 1 * time.Second
	backoffMin     = 2 * time.Second
	backoffMax     = 10 * time.Second
)

// Client is an HTTP client with bounded timeout and exponential-backoff
// retries, shared by every source adapter.
type Client struct {
	http        *http.Client
	maxAttempts int
	logger      logging.Logger
}

// NewClient creates a Client. Zero values fall back to the defaults.
func NewClient(timeout time.Duration, maxAttempts int, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Client{
		http:        &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// backoffDelay returns the wait before retry attempt n (1-based), doubling
// from the initial delay and clamped to the [min, max] bounds.
func backoffDelay(attempt int) time.Duration {
	delay := backoffInitial << (attempt - 1)
	if delay < backoffMin {
		delay = backoffMin
	}
	if delay > backoffMax {
		delay = backoffMax
	}
	return delay
}

// do runs one request with retries. The request body, when present, must
// be rebuildable, so callers pass a factory.
func (c *Client) do(ctx context.Context, build func() (*http.Request, error)) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := backoffDelay(attempt - 1)
			c.logger.Warn("reintentando llamada HTTP",
				logging.F("attempt", attempt),
				logging.F("delay", delay.String()))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := build()
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req.WithContext(ctx))
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		closeErr := resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if closeErr != nil {
			c.logger.WithError(closeErr).Warn("error cerrando respuesta HTTP")
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("respuesta HTTP %d de %s", resp.StatusCode, req.URL)
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("llamada HTTP agotó %d intentos: %w", c.maxAttempts, lastErr)
}

// GetRecords issues a GET expecting a JSON array of records. An empty but
// well-formed response returns an empty slice with a warning, never an
// error.
func (c *Client) GetRecords(ctx context.Context, url string, headers map[string]string) ([]map[string]interface{}, error) {
	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("respuesta no es un arreglo JSON: %w", err)
	}

	if len(records) == 0 {
		c.logger.Warn("fuente devolvió cero registros", logging.F("url", url))
	}

	return records, nil
}

// PostJSON issues a POST with a JSON body and decodes the JSON response
// into out.
func (c *Client) PostJSON(ctx context.Context, url string, payload interface{}, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error serializando payload: %w", err)
	}

	body, err := c.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("error decodificando respuesta: %w", err)
		}
	}
	return nil
}
