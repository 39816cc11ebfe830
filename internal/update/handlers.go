package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/CalcPad/internal/buttons"
	"github.com/Rorical/CalcPad/internal/eventbus"
	"github.com/Rorical/CalcPad/internal/models"
	"github.com/Rorical/CalcPad/ui/components"
)

// HandleKeyMsgWithEventBus moves keypad focus and presses the focused button.
// Digits and operators typed on the keyboard are ignored; the keypad is the
// only input surface.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, ready bool) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		moveFocus(appModel, -1, 0)
	case "down", "j":
		moveFocus(appModel, 1, 0)
	case "left", "h":
		moveFocus(appModel, 0, -1)
	case "right", "l":
		moveFocus(appModel, 0, 1)
	case "enter", " ":
		row := buttons.Layout()[appModel.FocusRow]
		pressButton(appModel, row[appModel.FocusCol], eb, ready)
	}
	return nil
}

// HandleMouseMsgWithEventBus presses the button under a left click
func HandleMouseMsgWithEventBus(appModel *models.AppModel, mouseMsg tea.MouseMsg, eb *eventbus.EventBus, ready bool) tea.Cmd {
	if mouseMsg.Action != tea.MouseActionPress || mouseMsg.Button != tea.MouseButtonLeft {
		return nil
	}
	row, col, ok := components.KeypadHit(mouseMsg.X, mouseMsg.Y)
	if !ok {
		return nil
	}
	appModel.FocusRow, appModel.FocusCol = row, col
	pressButton(appModel, buttons.Layout()[row][col], eb, ready)
	return nil
}

func pressButton(appModel *models.AppModel, b buttons.Button, eb *eventbus.EventBus, ready bool) {
	if !ready {
		appModel.Status = "Calculator service not available"
		return
	}
	if err := eb.SendToCore(eventbus.PressEvent{ButtonID: b.ID, Action: b.Action}); err != nil {
		appModel.Status = "Error sending press: " + err.Error()
		return
	}
	appModel.Flash = b.ID
}

// moveFocus steps focus across rows of different lengths, clamping the
// column to the target row
func moveFocus(appModel *models.AppModel, dRow, dCol int) {
	layout := buttons.Layout()

	row := appModel.FocusRow + dRow
	if row < 0 || row >= len(layout) {
		row = appModel.FocusRow
	}
	col := appModel.FocusCol + dCol
	if dRow != 0 {
		col = columnAt(layout[row], cellOffset(layout[appModel.FocusRow], appModel.FocusCol))
	}
	if col < 0 {
		col = 0
	}
	if col >= len(layout[row]) {
		col = len(layout[row]) - 1
	}

	appModel.FocusRow, appModel.FocusCol = row, col
}

// cellOffset returns the grid cell at which button col starts
func cellOffset(row []buttons.Button, col int) int {
	offset := 0
	for i := 0; i < col && i < len(row); i++ {
		offset += row[i].Span
	}
	return offset
}

// columnAt returns the index of the button covering grid cell offset
func columnAt(row []buttons.Button, offset int) int {
	cell := 0
	for i, b := range row {
		if offset < cell+b.Span {
			return i
		}
		cell += b.Span
	}
	return len(row) - 1
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		snap := event.Snapshot
		appModel.Display = snap.Display
		appModel.Operator = snap.Operator.Symbol()
		appModel.State = snap.State.String()

		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else {
			appModel.Status = "Ready"
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Pressed-button highlight lasts one tick
	appModel.Flash = ""
	return TickCmd()
}
