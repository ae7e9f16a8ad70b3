package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/tui"
	"github.com/MKhiriev/go-pass-gen/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	adapter adapter.GeneratorAdapter
	ui      UI
	logger  *logger.Logger
}

// NewApp connects the generator adapter selected by cfg to the terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	generator, err := adapter.NewGeneratorAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create generator adapter: %w", err)
	}

	ui, err := tui.New(generator, buildInfo, logger)
	if err != nil {
		_ = generator.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{adapter: generator, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is signalled, then
// releases the adapter.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.adapter.Close(); err != nil {
			a.logger.Err(err).Msg("close generator adapter")
		}
	}()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
