package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Rorical/CalcPad/internal/config"
	"github.com/Rorical/CalcPad/internal/core"
	"github.com/Rorical/CalcPad/internal/dispatcher"
	"github.com/Rorical/CalcPad/internal/eventbus"
	"github.com/Rorical/CalcPad/internal/metrics"
	"github.com/Rorical/CalcPad/internal/models"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.CalculatorService
	model      *AppModel
	logger     *slog.Logger
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.EventBusError) {
		logger.Warn("event bus error", "op", err.Operation, "error", err.Err)
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	// Presses are counted per session; nothing scrapes the TUI registry
	rec := metrics.New(prometheus.NewRegistry())
	service := core.NewCalculatorService(eb, rec, logger)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg, service),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
		logger:     logger,
	}, nil
}

func (app *Application) Start() error {
	app.logger.Info("starting calculator", "theme", app.config.ActiveTheme)
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	app.logger.Info("calculator stopped")
}

func createInitialAppModel(cfg *config.Config, service *core.CalculatorService) models.AppModel {
	snap := service.Snapshot()
	status := "Ready"
	if !cfg.IsValid() {
		status = fmt.Sprintf("Theme '%s' incomplete, using default colours", cfg.ActiveTheme)
	}
	return models.AppModel{
		Display:      snap.Display,
		State:        snap.State.String(),
		Status:       status,
		ServiceReady: service.IsReady(),
		Theme:        cfg.Current(),
	}
}
