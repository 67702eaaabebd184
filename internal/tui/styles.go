package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.Color("#FF6DB6")
	colorDim     = lipgloss.Color("#C48B9F")
	colorSuccess = lipgloss.Color("#98E4D6")
	colorError   = lipgloss.Color("#FF9999")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#221F22")).
		Background(colorAccent).
		Bold(false)
	return s
}
