package provider

import (
	"TUI_viral_topics/infrastructure/fetcher"
	"TUI_viral_topics/infrastructure/logger"
	"TUI_viral_topics/internal/core/domain"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *youtubeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := fetcher.NewHTTPFetcher(srv.Client(), nil, logger.Discard())
	return NewYoutubeProvider(f, srv.URL+"/youtube/v3/", logger.Discard()).(*youtubeProvider)
}

func TestSearchVideosParams(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "reddit cheating", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "viewCount", q.Get("order"))
		assert.Equal(t, "2026-10-14T12:00:00Z", q.Get("publishedAfter"))
		assert.Equal(t, "5", q.Get("maxResults"))
		assert.Equal(t, "secret", q.Get("key"))

		_, _ = w.Write([]byte(`{"items":[
			{"id":{"kind":"youtube#video","videoId":"v1"},"snippet":{"channelId":"c1","title":"one"}},
			{"id":{"kind":"youtube#video"},"snippet":{"channelId":"c2"}}
		]}`))
	})

	items, err := p.SearchVideos(context.Background(), "secret", domain.SearchQuery{
		Keyword:        "reddit cheating",
		PublishedAfter: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
		MaxResults:     5,
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "v1", items[0].Id.VideoId)
	assert.Equal(t, "c1", items[0].Snippet.ChannelId)
	assert.Empty(t, items[1].Id.VideoId)
}

func TestSearchVideosMissingItems(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"kind":"youtube#searchListResponse","pageInfo":{"totalResults":0}}`))
	})

	_, err := p.SearchVideos(context.Background(), "k", domain.SearchQuery{Keyword: "x", MaxResults: 5})
	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestSearchVideosEmptyItemsIsNotMissing(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	items, err := p.SearchVideos(context.Background(), "k", domain.SearchQuery{Keyword: "x", MaxResults: 5})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSearchVideosFetchFailure(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key."}}`))
	})

	_, err := p.SearchVideos(context.Background(), "bad", domain.SearchQuery{Keyword: "x", MaxResults: 5})
	var fetchErr *fetcher.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "API key not valid")
}

func TestGetVideosAndChannels(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch r.URL.Path {
		case "/youtube/v3/videos":
			assert.Equal(t, "snippet,statistics,contentDetails", q.Get("part"))
			assert.Equal(t, "v1,v2", q.Get("id"))
			_, _ = w.Write([]byte(`{"items":[
				{"id":"v1","snippet":{"title":"one","channelId":"c1","publishedAt":"2026-10-15T08:00:00Z",
				  "thumbnails":{"medium":{"url":"https://i.ytimg.com/vi/v1/mqdefault.jpg"}}},
				 "statistics":{"viewCount":"12345"},"contentDetails":{"duration":"PT4M13S"}},
				{"id":"v2","statistics":{}}
			]}`))
		case "/youtube/v3/channels":
			assert.Equal(t, "statistics", q.Get("part"))
			assert.Equal(t, "c1,c2", q.Get("id"))
			_, _ = w.Write([]byte(`{"items":[{"id":"c1","statistics":{"subscriberCount":"2100"}}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	videos, err := p.GetVideos(ctx, "k", []string{"v1", "v2"})
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, uint64(12345), videos[0].Statistics.ViewCount)
	assert.Equal(t, "PT4M13S", videos[0].ContentDetails.Duration)
	assert.Equal(t, "https://i.ytimg.com/vi/v1/mqdefault.jpg", videos[0].Snippet.Thumbnails.Medium.Url)
	assert.Equal(t, uint64(0), videos[1].Statistics.ViewCount)

	channels, err := p.GetChannels(ctx, "k", []string{"c1", "c2"})
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, uint64(2100), channels[0].Statistics.SubscriberCount)
}

func TestDefaultBaseURL(t *testing.T) {
	p := NewYoutubeProvider(nil, "", logger.Discard()).(*youtubeProvider)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3/search", p.endpoint("search"))
}
