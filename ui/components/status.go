package components

import (
	"github.com/Rorical/CalcPad/ui/styles"
)

func RenderStatus(status, state, operator string, width int) string {
	if width <= 0 {
		width = KeypadWidth
	}
	statusContent := status
	if state != "" {
		statusContent += " · " + state
	}
	if operator != "" {
		statusContent += " " + operator
	}

	return styles.StatusStyle(width).Render(statusContent)
}

func RenderHelp() string {
	return styles.HelpStyle().Render("←↑↓→ move · enter press · click press · q quit")
}
