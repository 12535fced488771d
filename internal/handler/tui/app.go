package tui

import (
	"context"
	"fmt"

	"TUI_viral_topics/internal/core/domain"
	"TUI_viral_topics/internal/core/ports"
	"TUI_viral_topics/internal/core/usecases"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

type currentView int

const (
	viewWelcome currentView = iota
	viewForm
	viewResults
)

type AppModel struct {
	viralUseCase usecases.ViralVideosUseCase
	logger       ports.LoggerPort
	exportPath   string
	openURL      func(url string) error

	welcomeModel *WelcomeModel
	formModel    *FormModel
	resultsModel *ResultsModel

	currentView currentView
	err         error

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	viralUC usecases.ViralVideosUseCase,
	defaults domain.RunConfig,
	exportPath string,
	log ports.LoggerPort,
) *AppModel {
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		viralUseCase: viralUC,
		logger:       log,
		exportPath:   exportPath,
		openURL:      browser.OpenURL,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.formModel = NewFormModel(m, defaults)
	m.resultsModel = NewResultsModel(m, domain.Report{}, defaults.SortBy)

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	m.logger.Info("TUI started on welcome screen")
	return nil
}

// Navigation messages used by the sub-models.
type showWelcomeMsg struct{}
type showFormMsg struct{}
type showResultsMsg struct {
	report domain.Report
	sortBy domain.SortKey
}

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("Ctrl+C or Esc pressed, quitting.")
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// every screen resizes, not just the visible one
		m.formModel.Update(msg)
		m.resultsModel.Update(msg)
		return m, nil

	case showWelcomeMsg:
		m.currentView = viewWelcome
		m.err = nil
		cmds = append(cmds, m.welcomeModel.Init())

	case showFormMsg:
		m.currentView = viewForm
		m.err = nil
		cmds = append(cmds, m.formModel.Init())

	case showResultsMsg:
		m.currentView = viewResults
		m.err = nil
		rm := NewResultsModel(m, msg.report, msg.sortBy)
		m.resultsModel = rm
		cmds = append(cmds, rm.Init())
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		_, cmd = m.welcomeModel.Update(msg)
	case viewForm:
		_, cmd = m.formModel.Update(msg)
	case viewResults:
		_, cmd = m.resultsModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *AppModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Something went wrong: %v\n\n(Ctrl+C to quit)", m.err)
	}

	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewForm:
		return m.formModel.View()
	case viewResults:
		return m.resultsModel.View()
	default:
		return "Unknown view…"
	}
}
