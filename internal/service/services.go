package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
)

type Services struct {
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

// NewServices builds the service layer. The generator is decorated with
// metrics first and logging on the outside, so the logged duration includes
// the time spent waiting for a slot.
func NewServices(deriver crypto.Deriver, cfg config.StructuredConfig, metrics DerivationMetrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var generator GeneratorService = NewGeneratorService(deriver, cfg.App, logger)
	if metrics != nil {
		generator = NewGeneratorMetricsService(metrics).Wrap(generator)
	}
	generator = NewGeneratorLoggingService(logger).Wrap(generator)

	return &Services{
		GeneratorService: generator,
		AppInfoService:   appInfoService,
	}, nil
}
