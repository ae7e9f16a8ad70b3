package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-gen/models"
)

// GeneratorService derives deterministic passwords for the transport layer.
type GeneratorService interface {
	// Generate derives the password for req. It returns an error wrapping
	// crypto.ErrInvalidInput, crypto.ErrPrimitiveUnavailable or
	// ErrDerivationNotAdmitted. No partial result is returned on error.
	Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error)
}

type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}

// GeneratorServiceWrapper defines middleware composition for GeneratorService.
// Implementations wrap an existing GeneratorService to add behavior such as
// logging or metrics.
type GeneratorServiceWrapper interface {
	Wrap(GeneratorService) GeneratorService // returns a decorated GeneratorService applying additional behavior
}

// DerivationMetrics is the subset of the metrics service used by the
// metrics wrapper.
type DerivationMetrics interface {
	ObserveDerivation(result string, elapsed time.Duration)
	TrackInflight() func()
}
