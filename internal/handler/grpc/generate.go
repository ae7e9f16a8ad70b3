package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Generate implements [GeneratorServer].
func (h *Handler) Generate(ctx context.Context, req *models.DerivationRequest) (*models.DerivationResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, app.MsgBodyFieldsRequired)
	}

	result, err := h.services.GeneratorService.Generate(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}

	return &result, nil
}

// toStatus maps service errors to gRPC statuses. Internal error text never
// reaches the caller.
func toStatus(err error) error {
	switch {
	case errors.Is(err, crypto.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, app.MsgBodyFieldsRequired)
	case errors.Is(err, service.ErrDerivationNotAdmitted):
		return status.Error(codes.ResourceExhausted, app.MsgDerivationNotAdmitted)
	default:
		return status.Error(codes.Internal, app.MsgDerivationFailed)
	}
}
