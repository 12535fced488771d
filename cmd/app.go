package cmd

import (
	"TUI_viral_topics/infrastructure/cache"
	"TUI_viral_topics/infrastructure/exporter"
	"TUI_viral_topics/infrastructure/fetcher"
	"TUI_viral_topics/infrastructure/logger"
	"TUI_viral_topics/infrastructure/provider"
	"TUI_viral_topics/internal/core/usecases"
	"context"
	"fmt"
)

// app holds the wired services for one process.
type app struct {
	log   logger.Logger
	cache *cache.RequestCache
	viral usecases.ViralVideosUseCase
}

func newApp(ctx context.Context, opts *globalOptions, logPrefix string) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	appLogger, err := logger.NewFileLogger(opts.logDir, logPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	requestCache := cache.NewRequestCache(ctx, cache.Options{
		TTL:      opts.cacheTTL,
		RedisURL: opts.redisURL,
	}, appLogger)

	httpFetcher := fetcher.NewHTTPFetcher(nil, requestCache, appLogger)
	youtubeProvider := provider.NewYoutubeProvider(httpFetcher, opts.apiBase, appLogger)
	csvExporter := exporter.NewCSVExporter(appLogger)

	return &app{
		log:   appLogger,
		cache: requestCache,
		viral: usecases.NewViralVideosUseCase(youtubeProvider, csvExporter, appLogger),
	}, nil
}

func (a *app) Close() {
	hits, misses := a.cache.Stats()
	a.log.Info(fmt.Sprintf("request cache: %d hits, %d misses", hits, misses))
	if err := a.cache.Close(); err != nil {
		a.log.Error("Failed to close request cache", err)
	}
	a.log.Close()
}
