package usecases

import (
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/core/ports"
	"context"
	"time"
)

type viralVideosUseCase struct {
	service  ports.YoutubePort
	exporter ports.ExporterPort
	log      ports.LoggerPort
	now      func() time.Time
}

// ProgressFunc is told which keyword is being fetched.
type ProgressFunc func(keyword string)

type ViralVideosUseCase interface {
	FetchViralVideos(ctx context.Context, cfg domain.RunConfig, progress ProgressFunc) (domain.Report, error)
	RankVideos(records []domain.VideoRecord, key domain.SortKey) []domain.VideoRecord
	ExportVideos(path string, records []domain.VideoRecord) error
}

func NewViralVideosUseCase(service ports.YoutubePort, exporter ports.ExporterPort, logger ports.LoggerPort) ViralVideosUseCase {
	return &viralVideosUseCase{
		service:  service,
		exporter: exporter,
		log:      logger,
		now:      time.Now,
	}
}
