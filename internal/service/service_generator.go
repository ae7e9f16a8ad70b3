// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
	"github.com/MKhiriev/go-pass-gen/models"
	"golang.org/x/sync/semaphore"
)

type generatorService struct {
	deriver   crypto.Deriver
	validator validators.Validator

	// slots is nil when the number of concurrent derivations is unlimited.
	slots *semaphore.Weighted

	logger *logger.Logger
}

// NewGeneratorService returns a GeneratorService backed by deriver. When
// cfg.MaxConcurrentDerivations is positive, at most that many derivations run
// at once and further callers wait for a slot until their context is done.
func NewGeneratorService(deriver crypto.Deriver, cfg config.App, logger *logger.Logger) GeneratorService {
	s := &generatorService{
		deriver:   deriver,
		validator: validators.NewDerivationRequestValidator(1),
		logger:    logger,
	}
	if cfg.MaxConcurrentDerivations > 0 {
		s.slots = semaphore.NewWeighted(int64(cfg.MaxConcurrentDerivations))
	}

	return s
}

func (s *generatorService) Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	// checked here as well so invalid requests never queue for a slot
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.DerivationResult{}, fmt.Errorf("%w: %w", crypto.ErrInvalidInput, err)
	}

	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return models.DerivationResult{}, fmt.Errorf("%w: %w", ErrDerivationNotAdmitted, err)
		}
		defer s.slots.Release(1)
	}

	d, err := s.deriver.Derive(req.Word, req.Pepper)
	if err != nil {
		return models.DerivationResult{}, fmt.Errorf("error deriving password: %w", err)
	}

	return models.DerivationResult{
		Password:   d.Password,
		RawHash:    base64.StdEncoding.EncodeToString(d.Key),
		Salt:       base64.StdEncoding.EncodeToString(d.Salt),
		Iterations: d.Iterations,
		Hash:       d.Hash,
	}, nil
}
