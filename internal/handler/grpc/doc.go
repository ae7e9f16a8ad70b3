// Package grpc exposes the password generator over gRPC.
//
// Messages are plain model structs carried by the JSON codec registered in
// package utils, so the service is described by a hand-written
// grpc.ServiceDesc instead of generated protobuf stubs.
package grpc
