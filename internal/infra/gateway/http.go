// Package gateway implements outbound WhatsApp delivery through the
// supported HTTP gateways.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"portal/internal/errors"
)

const (
	defaultTimeout  = 30 * time.Second
	maxResponseBody = 64 << 10
)

// ErrNotConfigured is returned when a gateway lacks the credentials it needs.
var ErrNotConfigured = errors.New("gateway not configured")

// ErrRejected is returned when a gateway answers but reports failure.
var ErrRejected = errors.New("gateway rejected message")

// postJSON sends body as JSON and returns the status code and raw response.
func postJSON(ctx context.Context, client *http.Client, endpoint string, headers map[string]string, body any) (int, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, nil, errors.WithStack(err)
	}

	return resp.StatusCode, raw, nil
}

func rejected(status int, raw []byte) error {
	return errors.Wrapf(ErrRejected, "status %s: %s", strconv.Itoa(status), truncate(string(raw), 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

func httpClientOrDefault(c *http.Client) *http.Client {
	if c != nil {
		return c
	}

	return &http.Client{Timeout: defaultTimeout}
}
