package usecases

import (
	"TUI_viral_topics/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sosodev/duration"
	"google.golang.org/api/youtube/v3"
)

// fetchRun is the state of a single FetchViralVideos call. Nothing in it
// outlives the call.
type fetchRun struct {
	cfg      domain.RunConfig
	seen     map[string]struct{}
	records  []domain.VideoRecord
	warnings []string
}

func newFetchRun(cfg domain.RunConfig) *fetchRun {
	return &fetchRun{
		cfg:  cfg,
		seen: make(map[string]struct{}),
	}
}

func (uc *viralVideosUseCase) warn(run *fetchRun, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	run.warnings = append(run.warnings, msg)
	uc.log.Warning(msg)
}

func (uc *viralVideosUseCase) FetchViralVideos(ctx context.Context, cfg domain.RunConfig, progress ProgressFunc) (domain.Report, error) {
	uc.log.Info("Init Fetch Viral Videos")

	if err := cfg.Validate(); err != nil {
		uc.log.Error("Invalid run configuration", err)
		return domain.Report{}, err
	}

	run := newFetchRun(cfg)
	publishedAfter := uc.now().UTC().Add(-time.Duration(cfg.Days) * 24 * time.Hour)

	for _, keyword := range cfg.Keywords {
		if progress != nil {
			progress(keyword)
		}
		uc.log.Info("Fetching: " + keyword)

		uc.collectKeyword(ctx, run, domain.SearchQuery{
			Keyword:        keyword,
			PublishedAfter: publishedAfter,
			MaxResults:     domain.SearchMaxResults,
		})
	}

	records := uc.RankVideos(run.records, cfg.SortBy)

	uc.log.Info(fmt.Sprintf("Fetch Viral Videos Completed: %d videos, %d warnings", len(records), len(run.warnings)))

	return domain.Report{
		Records:  records,
		Warnings: run.warnings,
		Keywords: len(cfg.Keywords),
	}, nil
}

func (uc *viralVideosUseCase) collectKeyword(ctx context.Context, run *fetchRun, query domain.SearchQuery) {
	hits, err := uc.service.SearchVideos(ctx, run.cfg.Credential, query)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			uc.warn(run, "No results for: %s", query.Keyword)
		} else {
			uc.warn(run, "Skipping %s: %v", query.Keyword, err)
		}
		return
	}

	candidates := run.collectCandidates(hits)
	if len(candidates) == 0 {
		return
	}

	videoIDs := make([]string, len(candidates))
	channelIDs := make([]string, len(candidates))
	for i, c := range candidates {
		videoIDs[i] = c.VideoID
		channelIDs[i] = c.ChannelID
	}

	videos, err := uc.service.GetVideos(ctx, run.cfg.Credential, videoIDs)
	if err != nil {
		uc.warn(run, "Skipping %s: %v", query.Keyword, err)
		return
	}

	channels, err := uc.service.GetChannels(ctx, run.cfg.Credential, channelIDs)
	if err != nil {
		uc.warn(run, "Skipping %s: %v", query.Keyword, err)
		return
	}

	// The two batch responses are paired by index. The API is expected to
	// keep request order; a pair whose channel does not match is dropped.
	paired := min(len(videos), len(channels))
	if len(videos) != len(channels) {
		uc.warn(run, "Batch size mismatch for %s: %d videos, %d channels", query.Keyword, len(videos), len(channels))
	}
	for _, v := range videos[paired:] {
		id := "<nil>"
		if v != nil {
			id = v.Id
		}
		uc.warn(run, "Skipped one video due to: no channel paired with video %s", id)
	}

	for i := 0; i < paired; i++ {
		record, err := buildRecord(videos[i], channels[i])
		if err != nil {
			uc.warn(run, "Skipped one video due to: %v", err)
			continue
		}

		if !passesFilters(run.cfg, record) {
			continue
		}

		run.records = append(run.records, record)
	}
}

// collectCandidates drops hits without both ids and any video already seen in this run.
func (r *fetchRun) collectCandidates(hits []*youtube.SearchResult) []domain.Candidate {
	var candidates []domain.Candidate
	for _, hit := range hits {
		if hit == nil || hit.Id == nil || hit.Snippet == nil {
			continue
		}

		videoID, channelID := hit.Id.VideoId, hit.Snippet.ChannelId
		if videoID == "" || channelID == "" {
			continue
		}

		if _, ok := r.seen[videoID]; ok {
			continue
		}
		r.seen[videoID] = struct{}{}

		candidates = append(candidates, domain.Candidate{VideoID: videoID, ChannelID: channelID})
	}
	return candidates
}

var errChannelMismatch = errors.New("channel mismatch")

func buildRecord(video *youtube.Video, channel *youtube.Channel) (domain.VideoRecord, error) {
	switch {
	case video == nil:
		return domain.VideoRecord{}, errors.New("empty video item")
	case video.Snippet == nil:
		return domain.VideoRecord{}, fmt.Errorf("video %s has no snippet", video.Id)
	case video.Snippet.Thumbnails == nil || video.Snippet.Thumbnails.Medium == nil:
		return domain.VideoRecord{}, fmt.Errorf("video %s has no medium thumbnail", video.Id)
	case video.Statistics == nil:
		return domain.VideoRecord{}, fmt.Errorf("video %s has no statistics", video.Id)
	case video.ContentDetails == nil:
		return domain.VideoRecord{}, fmt.Errorf("video %s has no content details", video.Id)
	case channel == nil || channel.Statistics == nil:
		return domain.VideoRecord{}, fmt.Errorf("channel statistics missing for video %s", video.Id)
	}

	if channel.Id != video.Snippet.ChannelId {
		return domain.VideoRecord{}, fmt.Errorf("%w: video %s belongs to %s but was paired with %s",
			errChannelMismatch, video.Id, video.Snippet.ChannelId, channel.Id)
	}

	length, err := duration.Parse(video.ContentDetails.Duration)
	if err != nil {
		return domain.VideoRecord{}, fmt.Errorf("video %s has invalid duration %q: %w", video.Id, video.ContentDetails.Duration, err)
	}

	views := video.Statistics.ViewCount
	subs := channel.Statistics.SubscriberCount

	return domain.VideoRecord{
		ID:              video.Id,
		Title:           video.Snippet.Title,
		Description:     domain.TruncateDescription(video.Snippet.Description),
		ThumbnailURL:    video.Snippet.Thumbnails.Medium.Url,
		PublishedAt:     video.Snippet.PublishedAt,
		ViewCount:       views,
		DurationSeconds: length.ToTimeDuration().Seconds(),
		SubscriberCount: subs,
		ViewToSubRatio:  domain.ViewToSubRatio(views, subs),
	}, nil
}

func passesFilters(cfg domain.RunConfig, r domain.VideoRecord) bool {
	if r.SubscriberCount > cfg.MaxSubscribers || r.ViewCount < cfg.MinViews {
		return false
	}
	return cfg.Duration.Allows(r.DurationSeconds)
}
