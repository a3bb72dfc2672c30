package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212"))
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focusMarker = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	rowLabel    = lipgloss.NewStyle().Width(10)

	messageStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	previewStyle = lipgloss.NewStyle().Padding(1, 2)
	codeStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
