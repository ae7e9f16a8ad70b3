package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

// GeneratorLoggingService logs the outcome and duration of every derivation.
// Request fields are secrets and are never logged.
type GeneratorLoggingService struct {
	inner  GeneratorService
	logger *logger.Logger
}

func NewGeneratorLoggingService(logger *logger.Logger) GeneratorServiceWrapper {
	return &GeneratorLoggingService{logger: logger}
}

func (s *GeneratorLoggingService) Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	log := logger.FromContextOr(ctx, s.logger)
	start := time.Now()

	result, err := s.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		log.Info().Dur("duration", elapsed).Msg("password derived")
	case errors.Is(err, crypto.ErrInvalidInput):
		log.Warn().Err(err).Dur("duration", elapsed).Msg("derivation rejected: invalid input")
	case errors.Is(err, ErrDerivationNotAdmitted):
		log.Warn().Err(err).Dur("duration", elapsed).Msg("derivation not admitted")
	default:
		log.Error().Err(err).Dur("duration", elapsed).Msg("derivation failed")
	}

	return result, err
}

func (s *GeneratorLoggingService) Wrap(wrapped GeneratorService) GeneratorService {
	s.inner = wrapped
	return s
}
