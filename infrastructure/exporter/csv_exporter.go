package exporter

import (
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/core/ports"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

const DefaultFileName = "viral_videos.csv"

var ErrNothingToExport = errors.New("no results to export")

type csvExporter struct {
	log ports.LoggerPort
}

func NewCSVExporter(logger ports.LoggerPort) ports.ExporterPort {
	return &csvExporter{log: logger}
}

// WriteCSV writes the header row followed by one row per record.
func WriteCSV(w io.Writer, records []domain.VideoRecord) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(domain.CSVHeader); err != nil {
		return fmt.Errorf("error while writing csv header: %w", err)
	}

	for _, r := range records {
		if err := cw.Write(r.CSVRow()); err != nil {
			return fmt.Errorf("error while writing csv row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Export creates the file only when there is something to put in it.
func (e *csvExporter) Export(path string, records []domain.VideoRecord) error {
	if len(records) == 0 {
		e.log.Warning("export skipped: empty result list")
		return ErrNothingToExport
	}
	if path == "" {
		path = DefaultFileName
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not create export file %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, records); err != nil {
		return fmt.Errorf("could not export to %s: %w", path, err)
	}

	e.log.Info(fmt.Sprintf("exported %d records to %s", len(records), path))
	return nil
}
