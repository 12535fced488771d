package fetcher

import (
	"TUI_viral_topics/infrastructure/cache"
	"TUI_viral_topics/infrastructure/logger"
	"TUI_viral_topics/internal/core/ports"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, ttl time.Duration) ports.FetcherPort {
	t.Helper()
	c := cache.NewRequestCache(context.Background(), cache.Options{TTL: ttl}, logger.Discard())
	return NewHTTPFetcher(nil, c, logger.Discard())
}

func TestFetchMemoizesIdenticalRequests(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, time.Minute)
	ctx := context.Background()

	params := url.Values{"q": {"golang"}, "key": {"k"}}
	body, err := f.Fetch(ctx, srv.URL+"/search", params)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(body))

	// same parameters in another insertion order
	again := url.Values{}
	again.Set("key", "k")
	again.Set("q", "golang")
	_, err = f.Fetch(ctx, srv.URL+"/search", again)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	// different credential is a different signature
	_, err = f.Fetch(ctx, srv.URL+"/search", url.Values{"q": {"golang"}, "key": {"other"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchRefetchesAfterTTL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, 5*time.Millisecond)
	ctx := context.Background()

	_, err := f.Fetch(ctx, srv.URL, url.Values{"a": {"1"}})
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	_, err = f.Fetch(ctx, srv.URL, url.Values{"a": {"1"}})
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchAPIErrorIsSentinelAndNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The request cannot be completed because you have exceeded your quota.","errors":[{"reason":"quotaExceeded"}]}}`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.Fetch(ctx, srv.URL+"/search", url.Values{"key": {"secret"}})
		var fetchErr *FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusForbidden, fetchErr.Status)
		assert.Contains(t, fetchErr.Message, "exceeded your quota")
		assert.NotContains(t, err.Error(), "secret")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, time.Minute)
	_, err := f.Fetch(context.Background(), srv.URL, url.Values{})

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "response is not valid JSON", fetchErr.Message)
}

func TestFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/videos"
	srv.Close()

	f := newTestFetcher(t, time.Minute)
	_, err := f.Fetch(context.Background(), endpoint, url.Values{"key": {"secret"}})

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, 0, fetchErr.Status)
	assert.NotEmpty(t, fetchErr.Message)
	assert.NotContains(t, fetchErr.Message, "secret")
}

func TestFetchWithoutCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), nil, logger.Discard())
	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), srv.URL, url.Values{})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}
