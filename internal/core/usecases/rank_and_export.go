package usecases

import (
	"TUI_viral_topics/internal/core/domain"
	"fmt"
)

func (uc *viralVideosUseCase) RankVideos(records []domain.VideoRecord, key domain.SortKey) []domain.VideoRecord {
	uc.log.Info(fmt.Sprintf("Ranking %d videos by %s", len(records), key))
	return domain.Rank(records, key)
}

func (uc *viralVideosUseCase) ExportVideos(path string, records []domain.VideoRecord) error {
	uc.log.Info("Init Export Videos")

	if err := uc.exporter.Export(path, records); err != nil {
		uc.log.Error("Failed to export videos", err)
		return fmt.Errorf("error while exporting videos: %w", err)
	}

	uc.log.Info("Export Videos Completed")
	return nil
}
