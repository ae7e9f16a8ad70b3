package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/app"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDMetadataKey is the metadata key carrying the trace ID in both
// directions.
const TraceIDMetadataKey = "x-trace-id"

func (h *Handler) traceIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	// fails only outside a real transport stream, e.g. in direct unit calls
	_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDMetadataKey, traceID))

	l := h.logger.WithTraceID(traceID)
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	return handler(ctx, req)
}

// loggingInterceptor logs the method, status code and duration of each call.
// Request messages are never logged.
func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	l := logger.FromContextOr(ctx, h.logger)
	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")

	return resp, err
}

func (h *Handler) recoverInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().
				Str("method", info.FullMethod).
				Interface("panic", rec).
				Msg("recovered from panic in gRPC handler")
			resp, err = nil, status.Error(codes.Internal, app.MsgDerivationFailed)
		}
	}()

	return handler(ctx, req)
}
