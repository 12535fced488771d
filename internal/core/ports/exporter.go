package ports

import "TUI_viral_topics/internal/core/domain"

type ExporterPort interface {
	Export(path string, records []domain.VideoRecord) error
}
