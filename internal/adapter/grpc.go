package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/utils"
	"github.com/MKhiriev/go-pass-gen/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const (
	grpcGenerateMethod     = "/generator.Generator/Generate"
	grpcTraceIDMetadataKey = "x-trace-id"
)

type grpcGeneratorAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCGeneratorAdapter constructs a gRPC implementation of
// [GeneratorAdapter] talking to adapterCfg.GRPCAddress over plaintext with
// the JSON codec. The connection is established lazily on the first call.
func NewGRPCGeneratorAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (GeneratorAdapter, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(utils.JSONCodecName)),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	return &grpcGeneratorAdapter{
		conn:    conn,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// Generate implements [GeneratorAdapter].
func (g *grpcGeneratorAdapter) Generate(ctx context.Context, req models.DerivationRequest) (models.DerivationResult, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, grpcTraceIDMetadataKey, traceID)
	}

	var result models.DerivationResult
	if err := g.conn.Invoke(ctx, grpcGenerateMethod, &req, &result); err != nil {
		return models.DerivationResult{}, mapGRPCError(err)
	}

	return result, nil
}

// GeneratePassword implements [GeneratorAdapter] on top of Generate.
func (g *grpcGeneratorAdapter) GeneratePassword(ctx context.Context, pepper, word string) (string, error) {
	result, err := g.Generate(ctx, models.DerivationRequest{Pepper: pepper, Word: word})
	if err != nil {
		return "", err
	}

	return result.Password, nil
}

// Close implements [GeneratorAdapter].
func (g *grpcGeneratorAdapter) Close() error {
	return g.conn.Close()
}
