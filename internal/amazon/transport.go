package amazon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultTimeout bounds a single exchange. There are no retries, so
// this is also the worst-case latency of a Do call.
const defaultTimeout = 10 * time.Second

// HTTPTransport is the default Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport wraps the given client, or a default one with a
// fixed 10 second timeout when hc is nil.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPTransport{client: hc}
}

// Get implements Transport with a single GET, no retries.
func (t *HTTPTransport) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
