package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			return m, m.parent.send(showFormMsg{})
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(welcomeTitleStyle.Render("📺 YouTube Viral Topics Tool"))
	b.WriteString("\n\n")
	b.WriteString("Find small channels whose recent videos are pulling big numbers.")
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("Press Enter to configure a search."))
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("(Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}
