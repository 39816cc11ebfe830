package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/CalcPad/internal/buttons"
	"github.com/Rorical/CalcPad/internal/config"
	"github.com/Rorical/CalcPad/ui/styles"
)

// Keypad geometry. A button spanning n cells is n*CellWidth+(n-1) columns
// wide; rows are separated by one blank line.
const (
	CellWidth   = 7
	CellGap     = 1
	KeypadCols  = 4
	KeypadWidth = KeypadCols*CellWidth + (KeypadCols-1)*CellGap
	// KeypadTop is the screen line of the first keypad row
	KeypadTop = DisplayHeight + 1
)

func buttonWidth(span int) int {
	return span*CellWidth + (span-1)*CellGap
}

func RenderKeypad(focusRow, focusCol int, flash string, theme config.Theme) string {
	var rows []string
	for r, row := range buttons.Layout() {
		cells := make([]string, 0, len(row)*2)
		for c, b := range row {
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", CellGap))
			}
			width := buttonWidth(b.Span)
			color := buttonColor(b.Kind, theme)

			var style lipgloss.Style
			switch {
			case b.ID == flash:
				style = styles.PressedButtonStyle(width, theme.Accent)
			case r == focusRow && c == focusCol:
				style = styles.FocusedButtonStyle(width, color)
			default:
				style = styles.ButtonStyle(width, color)
			}
			cells = append(cells, style.Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n\n")
}

func buttonColor(kind buttons.Kind, theme config.Theme) string {
	switch kind {
	case buttons.Operator, buttons.Equals:
		return theme.Operator
	case buttons.Function:
		return theme.Function
	default:
		return theme.Digit
	}
}

// KeypadHit maps a screen position to the keypad button under it
func KeypadHit(x, y int) (row, col int, ok bool) {
	dy := y - KeypadTop
	if dy < 0 || dy%2 != 0 {
		return 0, 0, false
	}
	layout := buttons.Layout()
	row = dy / 2
	if row >= len(layout) {
		return 0, 0, false
	}

	left := 0
	for c, b := range layout[row] {
		right := left + buttonWidth(b.Span)
		if x >= left && x < right {
			return row, c, true
		}
		left = right + CellGap
	}
	return 0, 0, false
}
