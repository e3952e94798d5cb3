package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     zap.NewNop(),
	}
}

func TestClient_Probe(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "200 is up", statusCode: http.StatusOK, want: true},
		{name: "204 is up", statusCode: http.StatusNoContent, want: true},
		{name: "404 is down", statusCode: http.StatusNotFound, want: false},
		{name: "500 is down", statusCode: http.StatusInternalServerError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL, 2*time.Second)
			assert.Equal(t, tt.want, c.Probe(context.Background(), "https://example.com"))
		})
	}
}

func TestClient_Probe_RequestShape(t *testing.T) {
	target := "https://example.com/path?a=1&b=2"
	var gotPath, gotTarget string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTarget = r.URL.Query().Get("url")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	assert.True(t, c.Probe(context.Background(), target))
	assert.Equal(t, "/head", gotPath)
	assert.Equal(t, target, gotTarget)
}

func TestClient_Probe_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 50*time.Millisecond)
	assert.False(t, c.Probe(context.Background(), "https://example.com"))
}

func TestClient_Probe_TransportFailure(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, time.Second)
	assert.False(t, c.Probe(context.Background(), "https://example.com"))
}

func TestClient_Probe_EscapesTarget(t *testing.T) {
	target := "https://example.com/a b?q=x&y=z"
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, time.Second)
	assert.True(t, c.Probe(context.Background(), target))
	assert.Equal(t, "url="+url.QueryEscape(target), rawQuery)
}
