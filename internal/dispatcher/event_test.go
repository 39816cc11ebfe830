package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/CalcPad/internal/calculator"
	"github.com/Rorical/CalcPad/internal/eventbus"
	"github.com/Rorical/CalcPad/internal/update"
)

func TestListenForCoreEventsWrapsEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)

	require.NoError(t, eb.SendToUI(eventbus.StateUpdateEvent{Snapshot: calculator.Snapshot{Display: "9"}}))

	msg := ed.ListenForCoreEvents()()
	coreMsg, ok := msg.(update.CoreEventMsg)
	require.True(t, ok)
	assert.Equal(t, "9", coreMsg.Event.(eventbus.StateUpdateEvent).Snapshot.Display)
}

func TestListenForCoreEventsStops(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	ed.Stop()

	assert.Nil(t, ed.ListenForCoreEvents()())
}
