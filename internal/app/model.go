package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/CalcPad/internal/update"
	"github.com/Rorical/CalcPad/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus, m.appModel.ServiceReady)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderDisplay(m.appModel.Display, m.appModel.Theme))
	b.WriteString("\n\n")
	b.WriteString(components.RenderKeypad(m.appModel.FocusRow, m.appModel.FocusCol, m.appModel.Flash, m.appModel.Theme))
	b.WriteString("\n\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.State, m.appModel.Operator, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderHelp())

	return b.String()
}
