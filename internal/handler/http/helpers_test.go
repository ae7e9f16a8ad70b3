package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/metrics"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/stretchr/testify/require"
)

// stubAppInfoService implements service.AppInfoService for testing.
type stubAppInfoService struct {
	name    string
	version string
}

func (s *stubAppInfoService) GetAppName(_ context.Context) string    { return s.name }
func (s *stubAppInfoService) GetAppVersion(_ context.Context) string { return s.version }

// stubGeneratorService implements service.GeneratorService and records the
// last request it received.
type stubGeneratorService struct {
	result  models.DerivationResult
	err     error
	called  int
	lastReq models.DerivationRequest
}

func (s *stubGeneratorService) Generate(_ context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	s.called++
	s.lastReq = req
	return s.result, s.err
}

func newStubHandler(gen service.GeneratorService) *Handler {
	return NewHandler(
		&service.Services{
			GeneratorService: gen,
			AppInfoService:   &stubAppInfoService{name: "go-pass-gen", version: "1.2.3"},
		},
		config.Server{},
		nil,
		logger.Nop(),
	)
}

// newRealHandler wires the production engine behind the HTTP layer.
func newRealHandler(t *testing.T, m *metrics.Service) *Handler {
	t.Helper()
	cfg := config.StructuredConfig{
		App:    config.App{Name: "go-pass-gen", Version: "1.2.3"},
		Server: config.Server{HTTPAddress: ":0"},
	}

	var dm service.DerivationMetrics
	if m != nil {
		dm = m
	}

	services, err := service.NewServices(crypto.NewDeriver(), cfg, dm, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, m, logger.Nop())
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}
