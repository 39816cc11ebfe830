package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Rorical/CalcPad/internal/calculator"
	"github.com/Rorical/CalcPad/internal/eventbus"
	"github.com/Rorical/CalcPad/internal/metrics"
)

// CalculatorService owns the calculator. Every press is handled to completion
// on the event loop goroutine before the next one is read.
type CalculatorService struct {
	calc     *calculator.Calculator
	eventBus *eventbus.EventBus
	metrics  *metrics.Recorder
	logger   *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool

	mu       sync.RWMutex
	snapshot calculator.Snapshot
	sendErr  error // last failed push, reported with the next one
}

// NewCalculatorService creates the service and its calculator. rec may be nil.
func NewCalculatorService(eb *eventbus.EventBus, rec *metrics.Recorder, logger *slog.Logger) *CalculatorService {
	ctx, cancel := context.WithCancel(context.Background())
	service := &CalculatorService{
		eventBus: eb,
		metrics:  rec,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	service.calc = calculator.New(service)
	service.snapshot = service.calc.Snapshot()
	return service
}

// Start pushes the initial display and runs the event loop in a goroutine
func (cs *CalculatorService) Start() {
	cs.pushStateToUI()
	cs.started = true
	go cs.eventLoop()
}

// Stop cancels the event loop and waits for it to exit
func (cs *CalculatorService) Stop() {
	cs.cancel()
	if cs.started {
		<-cs.done
	}
}

func (cs *CalculatorService) eventLoop() {
	defer close(cs.done)
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *CalculatorService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.PressEvent:
		cs.press(e.ButtonID, e.Action)
	}
}

func (cs *CalculatorService) press(buttonID string, action calculator.Action) {
	before := cs.calc.Snapshot()
	cs.calc.Dispatch(action)
	after := cs.calc.Snapshot()

	cs.mu.Lock()
	cs.snapshot = after
	cs.mu.Unlock()

	cs.metrics.Observe(buttonID, action, before, after)
	cs.logger.Debug("button pressed",
		"button", buttonID,
		"display", after.Display,
		"state", after.State.String(),
	)
}

// Show implements calculator.Display
func (cs *CalculatorService) Show(text string) {
	if cs.calc == nil {
		// calculator.New renders before the service holds it
		return
	}
	cs.mu.Lock()
	cs.snapshot = cs.calc.Snapshot()
	cs.mu.Unlock()
	cs.pushStateToUI()
}

func (cs *CalculatorService) pushStateToUI() {
	cs.mu.RLock()
	pending := cs.sendErr
	cs.mu.RUnlock()

	err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Snapshot: cs.Snapshot(),
		Error:    pending,
	})

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if err != nil {
		// The UI re-syncs on the next successful push
		cs.logger.Warn("failed to send state to UI", "error", err)
		cs.sendErr = err
		return
	}
	cs.sendErr = nil
}

// Snapshot returns the last known calculator state
func (cs *CalculatorService) Snapshot() calculator.Snapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshot
}

func (cs *CalculatorService) IsReady() bool {
	return cs.calc != nil && cs.ctx.Err() == nil
}
