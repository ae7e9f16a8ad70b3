// Package tui is the interactive terminal client of the password generator.
//
// It renders a two-field form and asks the server for a password whenever the
// user stops typing for a moment.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter   adapter.GeneratorAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(generator adapter.GeneratorAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if generator == nil {
		return nil, errNoAdapter
	}

	return &TUI{adapter: generator, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newGeneratorModel(ctx, t.adapter, t.buildInfo, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(generatorModel); !ok {
		return tea.ErrProgramKilled
	}

	return nil
}
