// Package amazon provides a signed client for the Amazon Product
// Advertising REST API abstracted behind interfaces for testability.
//
// Every request goes through the same pipeline: parameters are merged
// with operation defaults, canonicalized into a deterministic query
// string, signed with HMAC-SHA256, and dispatched over an injectable
// transport. The last exchange is memoized keyed on the pre-signature
// canonical query, so repeating the same logical call skips both the
// signing work and the network round trip.
package amazon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/amazon-catalog/internal/metrics"
	"github.com/donaldgifford/amazon-catalog/pkg/logger"
)

const (
	defaultHost        = "webservices.amazon.com"
	defaultPath        = "/onca/xml"
	defaultSearchIndex = "All"
)

// Transport performs the actual HTTP fetch. It is injected so tests can
// substitute a fake and so the timeout policy stays out of the signing
// pipeline.
type Transport interface {
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}

// Parser decodes a raw response body into a nested mapping. The vendor
// speaks XML; the default implementation collapses a single child
// element into a scalar mapping and preserves repeated children as a
// sequence, which the decoding layer relies on.
type Parser interface {
	Parse(body []byte) (map[string]any, error)
}

// Client dispatches signed requests against the Product Advertising API.
// It holds the credentials, the operation defaults, and the single
// cached exchange. Safe for concurrent use.
type Client struct {
	accessKey    string
	secretKey    string
	host         string
	path         string
	searchIndex  string
	associateTag string
	cacheLast    bool

	transport Transport
	parser    Parser
	logger    *slog.Logger
	nowFunc   func() time.Time // for testing

	mu        sync.Mutex
	lastQuery string
	lastBody  []byte
	lastCode  int
}

// Option configures the Client.
type Option func(*Client)

// WithHost overrides the default API host.
func WithHost(h string) Option {
	return func(c *Client) {
		c.host = h
	}
}

// WithPath overrides the default API path.
func WithPath(p string) Option {
	return func(c *Client) {
		c.path = p
	}
}

// WithSearchIndex overrides the default search category used by
// ItemSearch when the caller does not supply one.
func WithSearchIndex(s string) Option {
	return func(c *Client) {
		c.searchIndex = s
	}
}

// WithAssociateTag sets the associate tag sent with every request.
func WithAssociateTag(t string) Option {
	return func(c *Client) {
		c.associateTag = t
	}
}

// WithCache enables or disables last-request memoization. Enabled by
// default.
func WithCache(enabled bool) Option {
	return func(c *Client) {
		c.cacheLast = enabled
	}
}

// WithTransport overrides the default HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithParser overrides the default XML parser.
func WithParser(p Parser) Option {
	return func(c *Client) {
		c.parser = p
	}
}

// WithLogger overrides the default (discarding) logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// New creates a Product Advertising API client for the given
// credentials. Credentials are validated per call, not here, so a
// client built from incomplete configuration fails on use with
// ErrMissingCredentials rather than at startup.
func New(accessKey, secretKey string, opts ...Option) *Client {
	c := &Client{
		accessKey:   accessKey,
		secretKey:   secretKey,
		host:        defaultHost,
		path:        defaultPath,
		searchIndex: defaultSearchIndex,
		cacheLast:   true,
		transport:   NewHTTPTransport(nil),
		parser:      XMLParser{},
		logger:      logger.Discard(),
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do dispatches a raw request. Params must include Operation; the
// service identifier and access key are injected during
// canonicalization. The decoded response mapping is returned with the
// vendor's envelope element still present.
func (c *Client) Do(ctx context.Context, params map[string]string) (map[string]any, error) {
	if strings.TrimSpace(c.accessKey) == "" || strings.TrimSpace(c.secretKey) == "" {
		return nil, ErrMissingCredentials
	}

	canonical := Canonicalize(c.withTag(params), c.accessKey)
	op := params["Operation"]
	log := c.logger.With("request_id", uuid.NewString(), "operation", op)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cacheLast && canonical == c.lastQuery && c.lastBody != nil {
		metrics.CacheHitsTotal.Inc()
		log.DebugContext(ctx, "serving memoized response", "status", c.lastCode)
		return c.decode(c.lastBody)
	}

	// Record the new cache key before the call so a failed exchange
	// never matches a stale body.
	c.lastQuery = canonical
	c.lastBody = nil

	signed := Sign(canonical, c.host, c.path, c.secretKey, c.nowFunc())
	url := "http://" + c.host + c.path + "?" + signed
	log.DebugContext(ctx, "dispatching request", "query", canonical)

	start := time.Now()
	status, body, err := c.transport.Get(ctx, url)
	metrics.RequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TransportErrorsTotal.Inc()
		return nil, fmt.Errorf("calling product API: %w", err)
	}

	metrics.RequestsTotal.WithLabelValues(op).Inc()
	c.lastBody = body
	c.lastCode = status
	log.DebugContext(ctx, "response received", "status", status, "bytes", len(body))

	if status >= 400 {
		// An error body must never be served from the cache.
		c.lastBody = nil
		metrics.APIErrorsTotal.Inc()
		return nil, &StatusError{Code: status, Body: body}
	}

	return c.decode(body)
}

// ItemLookup fetches a single product by its ASIN. Extra parameters,
// such as ResponseGroup, are merged over the operation defaults.
func (c *Client) ItemLookup(ctx context.Context, asin string, extra map[string]string) (*Item, error) {
	params := merge(map[string]string{
		"Operation": "ItemLookup",
		"ItemId":    asin,
	}, extra)

	resp, err := c.Do(ctx, params)
	if err != nil {
		return nil, err
	}

	v, ok := dig(resp, "ItemLookupResponse", "Items", "Item")
	if !ok {
		return DecodeItem(nil), nil
	}

	switch item := v.(type) {
	case map[string]any:
		return DecodeItem(item), nil
	case []any:
		// Batched ItemId values produce a sequence; keep the first.
		if len(item) > 0 {
			if m, ok := item[0].(map[string]any); ok {
				return DecodeItem(m), nil
			}
		}
	}
	return DecodeItem(nil), nil
}

// ItemSearch searches the catalog by keywords. The search category
// defaults from the client configuration unless extra carries a
// SearchIndex.
func (c *Client) ItemSearch(ctx context.Context, keywords string, extra map[string]string) (*Search, error) {
	params := merge(map[string]string{
		"Operation":   "ItemSearch",
		"Keywords":    keywords,
		"SearchIndex": c.searchIndex,
	}, extra)

	resp, err := c.Do(ctx, params)
	if err != nil {
		return nil, err
	}

	if env, ok := dig(resp, "ItemSearchResponse"); ok {
		if m, ok := env.(map[string]any); ok {
			return DecodeSearch(m), nil
		}
	}
	return DecodeSearch(resp), nil
}

func (c *Client) withTag(params map[string]string) map[string]string {
	if c.associateTag == "" {
		return params
	}
	return merge(map[string]string{"AssociateTag": c.associateTag}, params)
}

func (c *Client) decode(body []byte) (map[string]any, error) {
	m, err := c.parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return m, nil
}

// merge copies defaults and lays extra over it. Inputs are never
// mutated; callers may reuse their parameter maps.
func merge(defaults, extra map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(extra))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
