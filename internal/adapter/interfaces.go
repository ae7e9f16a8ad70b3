// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the password generator server.
//
// The primary abstraction is [GeneratorAdapter], which decouples the client
// from the underlying protocol. Two implementations are shipped: HTTP/REST
// ([NewHTTPGeneratorAdapter]) and gRPC ([NewGRPCGeneratorAdapter]).
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the protocol in use.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_adapter_mock.go -package=mock

// GeneratorAdapter defines transport-agnostic communication with the
// generator server.
type GeneratorAdapter interface {
	// Generate requests the full derivation result for req.
	Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error)

	// GeneratePassword requests only the password for pepper and word.
	GeneratePassword(ctx context.Context, pepper, word string) (string, error)

	// Close releases the underlying connection, if any.
	Close() error
}

// NewGeneratorAdapter returns the gRPC adapter when cfg.GRPCAddress is set and
// the HTTP adapter otherwise.
func NewGeneratorAdapter(cfg config.ClientAdapter, logger *logger.Logger) (GeneratorAdapter, error) {
	if cfg.GRPCAddress != "" {
		return NewGRPCGeneratorAdapter(cfg, logger)
	}

	return NewHTTPGeneratorAdapter(cfg, logger)
}
