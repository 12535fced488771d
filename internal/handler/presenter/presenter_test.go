package presenter

import (
	"TUI_viral_topics/internal/core/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	assert.Equal(t, "Found 0 relevant videos.", Summary(0))
	assert.Equal(t, "Found 3 relevant videos.", Summary(3))
}

func TestRecord(t *testing.T) {
	r := domain.VideoRecord{
		ID: "v1", Title: "My Wife Cheated", Description: "A true story",
		ThumbnailURL: "https://i.ytimg.com/vi/v1/mqdefault.jpg", PublishedAt: "2026-10-15T08:00:00Z",
		ViewCount: 12345, SubscriberCount: 1000, ViewToSubRatio: 12.35,
	}

	out := Record(r, false, 0)
	assert.Contains(t, out, "My Wife Cheated")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=v1")
	assert.Contains(t, out, "Published: 2026-10-15T08:00:00Z")
	assert.Contains(t, out, "Views: 12345 | 👥 Subs: 1000 | Ratio: 12.35")
	assert.Contains(t, out, "A true story")
}

func TestReport(t *testing.T) {
	out := Report(domain.Report{
		Records:  []domain.VideoRecord{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}},
		Warnings: []string{"No results for: x"},
	}, 0)

	assert.Contains(t, out, "No results for: x")
	assert.Contains(t, out, "Found 2 relevant videos.")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestReportEmpty(t *testing.T) {
	out := Report(domain.Report{}, 80)
	assert.Equal(t, "Found 0 relevant videos.\n\n", out)
}
