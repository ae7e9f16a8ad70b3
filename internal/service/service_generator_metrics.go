package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/metrics"
	"github.com/MKhiriev/go-pass-gen/models"
)

// GeneratorMetricsService counts derivations by outcome and observes their
// duration.
type GeneratorMetricsService struct {
	inner   GeneratorService
	metrics DerivationMetrics
}

func NewGeneratorMetricsService(m DerivationMetrics) GeneratorServiceWrapper {
	return &GeneratorMetricsService{metrics: m}
}

func (s *GeneratorMetricsService) Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	done := s.metrics.TrackInflight()
	defer done()

	start := time.Now()
	result, err := s.inner.Generate(ctx, req)
	s.metrics.ObserveDerivation(derivationResult(err), time.Since(start))

	return result, err
}

func (s *GeneratorMetricsService) Wrap(wrapped GeneratorService) GeneratorService {
	s.inner = wrapped
	return s
}

func derivationResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, crypto.ErrInvalidInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, ErrDerivationNotAdmitted):
		return metrics.ResultNotAdmitted
	default:
		return metrics.ResultError
	}
}
