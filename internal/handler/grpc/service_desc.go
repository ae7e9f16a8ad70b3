// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-pass-gen/models"
	"google.golang.org/grpc"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "generator.Generator"

	// GenerateMethod is the full method name of the Generate RPC.
	GenerateMethod = "/" + ServiceName + "/Generate"
)

// GeneratorServer is the server API of the generator service.
type GeneratorServer interface {
	Generate(ctx context.Context, req *models.DerivationRequest) (*models.DerivationResult, error)
}

// GeneratorServiceDesc describes the generator service for grpc.Server.
var GeneratorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GeneratorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    generateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "generator",
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DerivationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Generate(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GeneratorServer).Generate(ctx, req.(*models.DerivationRequest))
	}

	return interceptor(ctx, in, info, handler)
}
