package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"ortomat-backend/internal/pkg/errs"
)

const maxResponseBytes = 1 << 20

type apiClient struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration, headers map[string]string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		headers: headers,
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends the request and decodes a 2xx JSON body into out.
// Transport failures, timeouts and 5xx answers are marked ErrProviderUnavailable.
func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode provider request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "build provider request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "%s %s", method, path), errs.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "read %s %s", method, path), errs.ErrProviderUnavailable)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return errs.Mark(statusError(method, path, resp.StatusCode, raw), errs.ErrProviderUnavailable)
	case resp.StatusCode == http.StatusNotFound:
		return errs.Mark(statusError(method, path, resp.StatusCode, raw), errs.ErrPaymentNotFound)
	case resp.StatusCode >= http.StatusBadRequest:
		return statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func statusError(method, path string, code int, body []byte) error {
	if len(body) > 256 {
		body = body[:256]
	}
	return errs.Newf("%s %s: status %d: %s", method, path, code, bytes.TrimSpace(body))
}
