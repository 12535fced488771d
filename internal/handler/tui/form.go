package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"TUI_viral_topics/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldKey formField = iota
	fieldDays
	fieldKeywords
	fieldMaxSubs
	fieldMinViews
	fieldDuration
	fieldSort
	fieldSubmit
	fieldCount
)

type fetchProgressMsg struct {
	keyword string
	ch      <-chan string
}
type fetchDoneMsg struct {
	report domain.Report
	cfg    domain.RunConfig
	err    error
}

type FormModel struct {
	parent *AppModel

	keyInput      textinput.Model
	daysInput     textinput.Model
	keywordsInput textarea.Model
	maxSubsInput  textinput.Model
	minViewsInput textinput.Model
	duration      domain.DurationBucket
	sortBy        domain.SortKey

	focus    formField
	fetching bool
	progress string
	spinner  spinner.Model
	err      error
}

func newNumberInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 12
	ti.Width = 12
	ti.SetValue(value)
	return ti
}

func NewFormModel(parent *AppModel, defaults domain.RunConfig) *FormModel {
	key := textinput.New()
	key.Prompt = ""
	key.Placeholder = "YouTube Data API key"
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'
	key.Width = 40
	key.SetValue(defaults.Credential)

	keywords := textarea.New()
	keywords.Placeholder = "one keyword per line"
	keywords.ShowLineNumbers = false
	keywords.SetWidth(48)
	keywords.SetHeight(6)
	keywords.SetValue(strings.Join(defaults.Keywords, "\n"))

	days := defaults.Days
	if days == 0 {
		days = domain.DefaultLookbackDays
	}

	m := &FormModel{
		parent:        parent,
		keyInput:      key,
		daysInput:     newNumberInput(strconv.Itoa(days)),
		keywordsInput: keywords,
		maxSubsInput:  newNumberInput(strconv.FormatUint(defaults.MaxSubscribers, 10)),
		minViewsInput: newNumberInput(strconv.FormatUint(defaults.MinViews, 10)),
		duration:      defaults.Duration,
		sortBy:        defaults.SortBy,
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	// start on the keywords when the key already came from the environment
	if defaults.Credential != "" {
		m.focus = fieldKeywords
	}
	return m
}

func (m *FormModel) Init() tea.Cmd {
	m.err = nil
	return m.setFocus(m.focus)
}

func (m *FormModel) setFocus(f formField) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount

	m.keyInput.Blur()
	m.daysInput.Blur()
	m.keywordsInput.Blur()
	m.maxSubsInput.Blur()
	m.minViewsInput.Blur()

	switch m.focus {
	case fieldKey:
		return m.keyInput.Focus()
	case fieldDays:
		return m.daysInput.Focus()
	case fieldKeywords:
		return m.keywordsInput.Focus()
	case fieldMaxSubs:
		return m.maxSubsInput.Focus()
	case fieldMinViews:
		return m.minViewsInput.Focus()
	}
	return nil
}

// RunConfig reads the form back into a validated configuration.
func (m *FormModel) RunConfig() (domain.RunConfig, error) {
	cfg := domain.RunConfig{
		Credential: strings.TrimSpace(m.keyInput.Value()),
		Keywords:   domain.ParseKeywords(m.keywordsInput.Value()),
		Duration:   m.duration,
		SortBy:     m.sortBy,
	}

	days, err := strconv.Atoi(strings.TrimSpace(m.daysInput.Value()))
	if err != nil {
		return cfg, fmt.Errorf("search recent days must be a number between %d and %d", domain.MinLookbackDays, domain.MaxLookbackDays)
	}
	cfg.Days = days

	if cfg.MaxSubscribers, err = parseCount("max subscriber count", m.maxSubsInput.Value()); err != nil {
		return cfg, err
	}
	if cfg.MinViews, err = parseCount("min view count", m.minViewsInput.Value()); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func parseCount(name, raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func (m *FormModel) submit() tea.Cmd {
	cfg, err := m.RunConfig()
	if err != nil {
		m.err = err
		m.parent.logger.Error("Invalid form input", err)
		return nil
	}

	m.err = nil
	m.fetching = true
	m.progress = ""
	m.parent.logger.Info(fmt.Sprintf("Starting fetch for %d keywords", len(cfg.Keywords)))

	progressCh := make(chan string, len(cfg.Keywords))
	return tea.Batch(
		m.spinner.Tick,
		waitForProgress(progressCh),
		fetchCmd(m.parent, cfg, progressCh),
	)
}

func fetchCmd(parent *AppModel, cfg domain.RunConfig, progressCh chan<- string) tea.Cmd {
	return func() tea.Msg {
		defer close(progressCh)
		report, err := parent.viralUseCase.FetchViralVideos(parent.appContext, cfg, func(keyword string) {
			progressCh <- keyword
		})
		return fetchDoneMsg{report: report, cfg: cfg, err: err}
	}
}

// waitForProgress delivers one keyword notification and is re-armed on every delivery.
func waitForProgress(progressCh <-chan string) tea.Cmd {
	return func() tea.Msg {
		keyword, ok := <-progressCh
		if !ok {
			return nil
		}
		return fetchProgressMsg{keyword: keyword, ch: progressCh}
	}
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if w := msg.Width - 30; w > 20 {
			m.keywordsInput.SetWidth(min(w, 80))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchProgressMsg:
		m.progress = msg.keyword
		return m, waitForProgress(msg.ch)

	case fetchDoneMsg:
		m.fetching = false
		m.progress = ""
		if msg.err != nil {
			m.err = msg.err
			m.parent.logger.Error("Fetch aborted", msg.err)
			return m, nil
		}
		return m, m.parent.send(showResultsMsg{report: msg.report, sortBy: msg.cfg.SortBy})

	case tea.KeyMsg:
		if m.fetching {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab":
		return m, m.setFocus(m.focus - 1)
	case "ctrl+s", "ctrl+f":
		return m, m.submit()
	}

	switch m.focus {
	case fieldDuration, fieldSort:
		switch msg.String() {
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ":
			m.cycle(1)
		case "up":
			return m, m.setFocus(m.focus - 1)
		case "down", "enter":
			return m, m.setFocus(m.focus + 1)
		}
		return m, nil

	case fieldSubmit:
		switch msg.String() {
		case "enter", " ":
			return m, m.submit()
		case "up":
			return m, m.setFocus(m.focus - 1)
		}
		return m, nil

	case fieldKeywords:
		var cmd tea.Cmd
		m.keywordsInput, cmd = m.keywordsInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter", "down":
		return m, m.setFocus(m.focus + 1)
	case "up":
		return m, m.setFocus(m.focus - 1)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case fieldDays:
		m.daysInput, cmd = m.daysInput.Update(msg)
	case fieldMaxSubs:
		m.maxSubsInput, cmd = m.maxSubsInput.Update(msg)
	case fieldMinViews:
		m.minViewsInput, cmd = m.minViewsInput.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) cycle(step int) {
	switch {
	case m.focus == fieldDuration && step > 0:
		m.duration = m.duration.Next()
	case m.focus == fieldDuration:
		m.duration = m.duration.Prev()
	case m.focus == fieldSort && step > 0:
		m.sortBy = m.sortBy.Next()
	case m.focus == fieldSort:
		m.sortBy = m.sortBy.Prev()
	}
}

func (m *FormModel) label(f formField, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m *FormModel) selector(f formField, value string) string {
	if m.focus == f {
		return focusedSelectorStyle.Render("‹ " + value + " ›")
	}
	return selectorStyle.Render("  " + value)
}

func (m *FormModel) View() string {
	var b strings.Builder

	b.WriteString(listHeaderStyle.Render("Configuration"))
	b.WriteString("\n")

	b.WriteString(m.label(fieldKey, "YouTube API Key") + m.keyInput.View() + "\n")
	b.WriteString(m.label(fieldDays, "Search Recent Days") + m.daysInput.View() + "\n")
	b.WriteString(m.label(fieldKeywords, "Keywords (one per line)") + "\n")
	b.WriteString(m.keywordsInput.View() + "\n")
	b.WriteString(m.label(fieldMaxSubs, "Max Subscriber Count") + m.maxSubsInput.View() + "\n")
	b.WriteString(m.label(fieldMinViews, "Min View Count") + m.minViewsInput.View() + "\n")
	b.WriteString(m.label(fieldDuration, "Filter by Duration") + m.selector(fieldDuration, m.duration.String()) + "\n")
	b.WriteString(m.label(fieldSort, "Sort Results By") + m.selector(fieldSort, m.sortBy.String()) + "\n\n")

	button := buttonStyle
	if m.focus == fieldSubmit {
		button = focusedButtonStyle
	}
	b.WriteString(button.Render("🔍 Fetch Viral Videos"))
	b.WriteString("\n\n")

	if m.fetching {
		status := "Fetching…"
		if m.progress != "" {
			status = "Fetching: " + m.progress
		}
		b.WriteString(m.spinner.View() + " " + statusMessageStyle.Render(status))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		msg := m.err.Error()
		if errors.Is(m.err, domain.ErrMissingCredential) {
			msg = "API Key is required!"
		}
		b.WriteString(errorMessageStyle.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(welcomePromptStyle.Render("Tab/↑/↓ to move, ←/→ to change a choice, Ctrl+S to fetch. Esc to quit."))
	return docStyle.Render(b.String())
}
