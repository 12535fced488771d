package provider

import (
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/core/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"google.golang.org/api/youtube/v3"
)

const DefaultAPIBase = "https://www.googleapis.com/youtube/v3"

type youtubeProvider struct {
	fetcher ports.FetcherPort
	baseURL string
	log     ports.LoggerPort
}

func NewYoutubeProvider(fetcher ports.FetcherPort, baseURL string, logger ports.LoggerPort) ports.YoutubePort {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &youtubeProvider{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger,
	}
}

func (s *youtubeProvider) endpoint(name string) string {
	return s.baseURL + "/" + name
}

// SearchVideos returns the first page of most-viewed videos for the query.
// A response without an "items" field yields domain.ErrNoResults.
func (s *youtubeProvider) SearchVideos(ctx context.Context, credential string, query domain.SearchQuery) ([]*youtube.SearchResult, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query.Keyword)
	params.Set("type", "video")
	params.Set("order", "viewCount")
	params.Set("publishedAfter", query.PublishedAfterParam())
	params.Set("maxResults", strconv.FormatInt(query.MaxResults, 10))
	params.Set("key", credential)

	body, err := s.fetcher.Fetch(ctx, s.endpoint("search"), params)
	if err != nil {
		return nil, fmt.Errorf("error in search call for %q: %w", query.Keyword, err)
	}

	var response youtube.SearchListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error while decoding search response: %w", err)
	}

	if response.Items == nil {
		return nil, fmt.Errorf("search for %q: %w", query.Keyword, domain.ErrNoResults)
	}

	s.log.Info(fmt.Sprintf("search %q returned %d items", query.Keyword, len(response.Items)))
	return response.Items, nil
}

func (s *youtubeProvider) GetVideos(ctx context.Context, credential string, videoIDs []string) ([]*youtube.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(videoIDs, ","))
	params.Set("key", credential)

	body, err := s.fetcher.Fetch(ctx, s.endpoint("videos"), params)
	if err != nil {
		return nil, fmt.Errorf("error while getting video details: %w", err)
	}

	var response youtube.VideoListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error while decoding video details: %w", err)
	}

	return response.Items, nil
}

func (s *youtubeProvider) GetChannels(ctx context.Context, credential string, channelIDs []string) ([]*youtube.Channel, error) {
	params := url.Values{}
	params.Set("part", "statistics")
	params.Set("id", strings.Join(channelIDs, ","))
	params.Set("key", credential)

	body, err := s.fetcher.Fetch(ctx, s.endpoint("channels"), params)
	if err != nil {
		return nil, fmt.Errorf("error while getting channel statistics: %w", err)
	}

	var response youtube.ChannelListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error while decoding channel statistics: %w", err)
	}

	return response.Items, nil
}
