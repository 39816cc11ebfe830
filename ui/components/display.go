package components

import (
	"github.com/Rorical/CalcPad/internal/config"
	"github.com/Rorical/CalcPad/ui/styles"
)

// DisplayHeight is the number of lines RenderDisplay produces
const DisplayHeight = 3

func RenderDisplay(display string, theme config.Theme) string {
	// border and padding take four columns
	inner := KeypadWidth - 4
	return styles.DisplayStyle(KeypadWidth, theme.Display, theme.Accent).Render(truncate(display, inner))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
