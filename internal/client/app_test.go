package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/mock"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ClientAdapter
		wantErr bool
	}{
		{name: "http adapter", cfg: config.ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}},
		{name: "grpc adapter", cfg: config.ClientAdapter{GRPCAddress: "localhost:9090", RequestTimeout: time.Second}},
		{name: "no address", cfg: config.ClientAdapter{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(&config.ClientConfig{Adapter: tt.cfg}, models.NewAppBuildInfo("", "", ""), logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, app.ui)
			assert.NoError(t, app.adapter.Close())
		})
	}
}

func TestApp_RunClosesAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGeneratorAdapter(ctrl)
	generator.EXPECT().Close().Return(nil)

	ui := &stubUI{}
	app := &App{adapter: generator, ui: ui, logger: logger.Nop()}

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestApp_RunReturnsUIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGeneratorAdapter(ctrl)
	generator.EXPECT().Close().Return(errors.New("already closed"))

	uiErr := errors.New("terminal gone")
	app := &App{adapter: generator, ui: &stubUI{err: uiErr}, logger: logger.Nop()}

	err := app.run(context.Background())

	assert.ErrorIs(t, err, uiErr)
}
