// Package client holds the gateway's HTTP clients for the downstream
// services. Transport failures and timeouts surface as Unavailable;
// structured downstream errors keep their original kind and message.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
	"github.com/dwikikusuma/minicommerce/pkg/httpx"
)

const userIDHeader = "X-User-Id"

func doJSON(client *http.Client, req *http.Request, out any, unavailableMsg string) error {
	resp, err := client.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.Unavailable, unavailableMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return downstreamError(resp, unavailableMsg)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.Internal, "invalid downstream response", err)
	}
	return nil
}

// downstreamError rebuilds a typed error from a non-2xx response. The
// downstream's own message is kept when it sent one.
func downstreamError(resp *http.Response, fallbackMsg string) error {
	kind := httpx.KindFromStatus(resp.StatusCode)
	message := fallbackMsg

	var body httpx.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		message = body.Message
	}

	return apperr.New(kind, message)
}

func newRequest(ctx context.Context, method, url, userID string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if userID != "" {
		req.Header.Set(userIDHeader, userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
