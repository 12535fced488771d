package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	welcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("62")).
				Padding(1, 0)
	welcomePromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	listHeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			MarginBottom(1).
			PaddingBottom(1)

	// form labels
	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(lipgloss.Color("245"))
	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("62")).
				Bold(true)
	selectorStyle = lipgloss.NewStyle().
			PaddingLeft(1)
	focusedSelectorStyle = selectorStyle.
				Foreground(lipgloss.Color("62"))
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	focusedButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("62")).
				Foreground(lipgloss.Color("62")).
				Bold(true)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		})
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))
)
