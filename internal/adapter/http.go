package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpGeneratorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPGeneratorAdapter constructs an HTTP/REST implementation of
// [GeneratorAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPGeneratorAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (GeneratorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpGeneratorAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a request bound to ctx that carries the trace ID from ctx,
// if any.
func (h *httpGeneratorAdapter) request(ctx context.Context) *resty.Request {
	r := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		r.SetHeader(traceIDHeader, traceID)
	}
	return r
}

// Generate implements [GeneratorAdapter]. It POSTs req to /api/generate.
func (h *httpGeneratorAdapter) Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	var result models.DerivationResult

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		return models.DerivationResult{}, fmt.Errorf("%w: generate request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DerivationResult{}, err
	}

	return result, nil
}

// GeneratePassword implements [GeneratorAdapter]. It calls
// GET /api/generate/{pepper}/{word} with both segments path-escaped.
func (h *httpGeneratorAdapter) GeneratePassword(ctx context.Context, pepper, word string) (string, error) {
	var result models.PasswordResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/api/generate/" + url.PathEscape(pepper) + "/" + url.PathEscape(word))
	if err != nil {
		return "", fmt.Errorf("%w: generate password request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Password, nil
}

// Close implements [GeneratorAdapter]. HTTP connections are pooled by the
// client, so there is nothing to release.
func (h *httpGeneratorAdapter) Close() error {
	return nil
}
