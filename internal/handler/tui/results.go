package tui

import (
	"fmt"
	"strings"

	"TUI_viral_topics/infrastructure/exporter"
	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/handler/presenter"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const resultsChromeHeight = 9

type ResultsModel struct {
	parent   *AppModel
	report   domain.Report
	sortBy   domain.SortKey
	cursor   int
	viewport viewport.Model
	// first content line of each record, for keeping the cursor in view
	offsets []int

	statusMessage string
	err           error
}

func NewResultsModel(parent *AppModel, report domain.Report, sortBy domain.SortKey) *ResultsModel {
	width, height := parent.width-4, parent.height-resultsChromeHeight
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}

	m := &ResultsModel{
		parent:   parent,
		report:   report,
		sortBy:   sortBy,
		viewport: viewport.New(width, height),
	}
	m.refresh()
	return m
}

func (m *ResultsModel) Init() tea.Cmd {
	m.statusMessage = ""
	m.err = nil
	m.parent.logger.Info(fmt.Sprintf("ResultsModel: showing %d videos", len(m.report.Records)))
	return nil
}

// refresh re-renders every record into the viewport.
func (m *ResultsModel) refresh() {
	var b strings.Builder
	m.offsets = m.offsets[:0]
	line := 0

	if w := presenter.Warnings(m.report.Warnings); w != "" {
		b.WriteString(w)
		b.WriteString("\n")
		line += strings.Count(w, "\n") + 1
	}

	for i, r := range m.report.Records {
		m.offsets = append(m.offsets, line)
		block := presenter.Record(r, i == m.cursor, m.viewport.Width-2)
		b.WriteString(block)
		b.WriteString("\n\n")
		line += strings.Count(block, "\n") + 2
	}

	m.viewport.SetContent(b.String())
	m.scrollToCursor()
}

func (m *ResultsModel) scrollToCursor() {
	if m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]
	bottom := m.viewport.TotalLineCount()
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *ResultsModel) selected() (domain.VideoRecord, bool) {
	if m.cursor < 0 || m.cursor >= len(m.report.Records) {
		return domain.VideoRecord{}, false
	}
	return m.report.Records[m.cursor], true
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-resultsChromeHeight, 3)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.report.Records)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil

		case "s":
			m.sortBy = m.sortBy.Next()
			m.report.Records = m.parent.viralUseCase.RankVideos(m.report.Records, m.sortBy)
			m.cursor = 0
			m.statusMessage = "Sorted by " + m.sortBy.String()
			m.err = nil
			m.refresh()
			return m, nil

		case "e":
			if len(m.report.Records) > 0 {
				m.export()
			}
			return m, nil

		case "o", "enter":
			if r, ok := m.selected(); ok {
				if err := m.parent.openURL(r.URL()); err != nil {
					m.parent.logger.Error("Could not open browser", err)
					m.err = fmt.Errorf("could not open browser: %w", err)
				} else {
					m.statusMessage = "Opened " + r.URL()
					m.err = nil
				}
			}
			return m, nil

		case "b", "backspace":
			return m, m.parent.send(showFormMsg{})

		case "q":
			m.parent.cancelApp()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ResultsModel) export() {
	path := m.parent.exportPath
	if path == "" {
		path = exporter.DefaultFileName
	}

	if err := m.parent.viralUseCase.ExportVideos(path, m.report.Records); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.statusMessage = fmt.Sprintf("Saved %d videos to %s", len(m.report.Records), path)
}

func (m *ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render(fmt.Sprintf("%s  (sorted by %s)", presenter.Summary(len(m.report.Records)), m.sortBy)))
	b.WriteString("\n")

	if len(m.report.Records) == 0 && len(m.report.Warnings) == 0 {
		b.WriteString(welcomePromptStyle.Render("No videos matched the filters."))
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n\n")

	if m.statusMessage != "" {
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	help := "↑/↓ select, s sort, o open, b back, q quit."
	if len(m.report.Records) > 0 {
		help = "↑/↓ select, s sort, e export CSV, o open, b back, q quit."
	}
	b.WriteString(welcomePromptStyle.Render(help))

	return docStyle.Render(b.String())
}
