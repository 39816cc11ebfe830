package styles

import "github.com/charmbracelet/lipgloss"

func DisplayStyle(width int, foreground, border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Foreground(lipgloss.Color(foreground)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Right).
		Width(width - 2)
}

func ButtonStyle(width int, foreground string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(foreground)).
		Background(lipgloss.Color("236")).
		Align(lipgloss.Center).
		Width(width)
}

func FocusedButtonStyle(width int, foreground string) lipgloss.Style {
	return ButtonStyle(width, foreground).
		Bold(true).
		Reverse(true)
}

func PressedButtonStyle(width int, accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(accent)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)
}
