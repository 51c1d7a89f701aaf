package amazon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/amazon-catalog/internal/amazon"
)

func TestHTTPTransport_Get(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<Resp/>"))
	}))
	defer srv.Close()

	tr := amazon.NewHTTPTransport(nil)
	status, body, err := tr.Get(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []byte("<Resp/>"), body)
}

func TestHTTPTransport_StatusPassthrough(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("<Error/>"))
	}))
	defer srv.Close()

	tr := amazon.NewHTTPTransport(srv.Client())
	status, body, err := tr.Get(context.Background(), srv.URL)

	// A bad status is not a transport error; the caller decides.
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, []byte("<Error/>"), body)
}

func TestHTTPTransport_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	tr := amazon.NewHTTPTransport(nil)
	_, _, err := tr.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing request")
}

func TestHTTPTransport_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := amazon.NewHTTPTransport(nil)
	_, _, err := tr.Get(ctx, srv.URL)
	require.Error(t, err)
}

func TestClient_EndToEndOverHTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("Signature"))
		assert.NotEmpty(t, q.Get("Timestamp"))
		assert.Equal(t, "AWSECommerceService", q.Get("Service"))

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(lookupXML))
	}))
	defer srv.Close()

	// The vendor scheme is fixed to http, so point the client at the
	// test server's host directly.
	c := amazon.New("AK", "SK",
		amazon.WithHost(srv.Listener.Addr().String()),
		amazon.WithTransport(amazon.NewHTTPTransport(srv.Client())),
	)

	item, err := c.ItemLookup(context.Background(), "0385504209", nil)
	require.NoError(t, err)

	title, ok := item.Title()
	require.True(t, ok)
	assert.Equal(t, "The Da Vinci Code", title)
}
