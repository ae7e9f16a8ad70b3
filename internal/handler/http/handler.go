package http

import (
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/metrics"
	"github.com/MKhiriev/go-pass-gen/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// metrics is optional; routes are left uninstrumented when nil.
	metrics *metrics.Service

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Service, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}
