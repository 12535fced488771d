package fetcher

import (
	"TUI_viral_topics/infrastructure/cache"
	"TUI_viral_topics/internal/core/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// FetchError is the only error Fetch returns. Message is safe to show to the
// user: it never carries the request URL, which holds the credential.
type FetchError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

type httpFetcher struct {
	client *http.Client
	cache  Cache
	log    ports.LoggerPort
}

// NewHTTPFetcher returns a fetcher that memoizes successful responses in c.
// A nil client gets a default one with DefaultTimeout; a nil cache disables memoization.
func NewHTTPFetcher(client *http.Client, c Cache, log ports.LoggerPort) ports.FetcherPort {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &httpFetcher{
		client: client,
		cache:  c,
		log:    log,
	}
}

type errorEnvelope struct {
	Error *googleapi.Error `json:"error"`
}

func (f *httpFetcher) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	// Encode sorts by key, so equal parameter sets produce the same signature.
	query := params.Encode()
	key := cache.Key(endpoint, query)

	if f.cache != nil {
		if data, ok := f.cache.Get(ctx, key); ok {
			f.log.Info("cache hit for " + endpoint)
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query, nil)
	if err != nil {
		return nil, f.fail(endpoint, 0, unwrapURLError(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.fail(endpoint, 0, unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, f.fail(endpoint, resp.StatusCode, "failed to read response body: "+unwrapURLError(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, f.fail(endpoint, resp.StatusCode, apiErrorMessage(resp, body))
	}

	if !json.Valid(body) {
		return nil, f.fail(endpoint, resp.StatusCode, "response is not valid JSON")
	}

	if f.cache != nil {
		f.cache.Set(ctx, key, body)
	}
	f.log.Info(fmt.Sprintf("GET %s completed (%d bytes)", endpoint, len(body)))

	return body, nil
}

func (f *httpFetcher) fail(endpoint string, status int, msg string) error {
	fetchErr := &FetchError{Endpoint: endpoint, Status: status, Message: msg}
	f.log.Error("request failed", fetchErr)
	return fetchErr
}

func apiErrorMessage(resp *http.Response, body []byte) string {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		return env.Error.Message
	}
	return http.StatusText(resp.StatusCode)
}

// unwrapURLError drops the *url.Error wrapper so the query string is not echoed back.
func unwrapURLError(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}
	return err.Error()
}
