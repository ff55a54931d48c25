package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBreakerOpensUnderConcurrentFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	cfg.CircuitBreakerMax = 2
	client := NewRateLimitedHTTPClient(cfg, nil)

	// The scheduler job and the import endpoint can hit the feed at the
	// same time; the breaker state must stay consistent under that load.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			if err != nil {
				return
			}
			client.Do(context.Background(), req)
		}()
	}
	wg.Wait()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestHTTPClientResetClosesBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := DefaultHTTPClientConfig()
	cfg.MaxRetries = 0
	cfg.RateLimit = 1000
	cfg.CircuitBreakerMax = 1
	client := NewRateLimitedHTTPClient(cfg, nil)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), req)
	require.Error(t, err)

	_, err = client.Do(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")

	client.Reset()

	// Requests flow to the upstream again; the 503 fails them, the
	// breaker does not.
	_, err = client.Do(context.Background(), req)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "circuit breaker open")
}
