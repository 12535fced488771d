package presenter

import (
	"TUI_viral_topics/internal/core/domain"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))
	selectedTitleStyle = titleStyle.
				Reverse(true)
	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})
	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	recordStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1)
	selectedRecordStyle = recordStyle.
				BorderForeground(lipgloss.Color("62"))
)

func Summary(found int) string {
	return fmt.Sprintf("Found %d relevant videos.", found)
}

// Record renders one result: thumbnail, linked title, publish date,
// a views/subscribers/ratio line and the description. width <= 0 means no wrapping.
func Record(r domain.VideoRecord, selected bool, width int) string {
	box, title := recordStyle, titleStyle
	if selected {
		box, title = selectedRecordStyle, selectedTitleStyle
	}
	if width > 0 {
		box = box.Width(width)
	}

	lines := []string{
		title.Render(r.Title),
		linkStyle.Render(r.URL()),
		captionStyle.Render("Thumbnail: " + r.ThumbnailURL),
		captionStyle.Render("Published: " + r.PublishedAt),
		statsStyle.Render(fmt.Sprintf("👁 Views: %d | 👥 Subs: %d | Ratio: %s", r.ViewCount, r.SubscriberCount, r.RatioString())),
	}
	if r.Description != "" {
		lines = append(lines, r.Description)
	}

	return box.Render(strings.Join(lines, "\n"))
}

func Warnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(warningStyle.Render("⚠ " + w))
		b.WriteString("\n")
	}
	return b.String()
}

// Report renders the summary followed by every record, separated by blank lines.
func Report(report domain.Report, width int) string {
	var b strings.Builder
	b.WriteString(Warnings(report.Warnings))
	b.WriteString(Summary(len(report.Records)))
	b.WriteString("\n\n")
	for _, r := range report.Records {
		b.WriteString(Record(r, false, width))
		b.WriteString("\n\n")
	}
	return b.String()
}
